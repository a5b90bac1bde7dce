package usecase

import (
	"context"

	"autosphere/internal/domain/entity"
)

// DirectoryUsecase manages the registered principals keyed by email.
// AddUser does not enforce email uniqueness; AddUserIfAbsent checks and inserts
// under one lock and reports false when the email is already taken.
type DirectoryUsecase interface {
	AddUser(ctx context.Context, stored entity.StoredPrincipal) error
	AddUserIfAbsent(ctx context.Context, stored entity.StoredPrincipal) (bool, error)
	UpdateUser(ctx context.Context, email string, patch entity.PrincipalPatch) (*entity.Principal, error)
	SetPassword(ctx context.Context, email, sealed string) error
	DeleteUser(ctx context.Context, email string) error

	List(ctx context.Context) []entity.Principal
	Find(ctx context.Context, email string) (*entity.StoredPrincipal, bool)
	Exists(ctx context.Context, email string) bool
	ListByRole(ctx context.Context, role entity.Role) []entity.Principal
}
