package impl

import (
	"context"

	"autosphere/internal/domain/entity"
	domainerrors "autosphere/internal/domain/errors"
	"autosphere/internal/usecase"
)

// requireRole returns the active principal when it holds one of roles.
// Signed-out callers get UNAUTHORIZED, everyone else FORBIDDEN.
func requireRole(ctx context.Context, session usecase.SessionUsecase, roles ...entity.Role) (*entity.Principal, error) {
	current := session.Current(ctx)
	if current == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if len(roles) > 0 && !current.HasRole(roles...) {
		return nil, domainerrors.ErrForbidden.WithDetails("role " + current.Role.String() + " is not allowed")
	}

	return current, nil
}
