// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"autosphere/internal/domain/entity"
)

// SessionUsecase owns the single active principal.
type SessionUsecase interface {
	// Login normalizes the principal, persists it as the session cache and activates it.
	Login(ctx context.Context, principal entity.Principal) (*entity.Principal, error)

	// Logout clears the active principal and its cache.
	Logout(ctx context.Context) error

	// Register behaves exactly like Login. Directory side effects belong to the caller.
	Register(ctx context.Context, principal entity.Principal) (*entity.Principal, error)

	// UpdateUser merges the patch over the active principal. It returns (nil, nil) when signed out.
	UpdateUser(ctx context.Context, patch entity.PrincipalPatch) (*entity.Principal, error)

	// Current returns a copy of the active principal, or nil.
	Current(ctx context.Context) *entity.Principal

	// Role returns the active principal's role, or "" when signed out.
	Role(ctx context.Context) entity.Role
}
