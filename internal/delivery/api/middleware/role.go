package middleware

import (
	"log/slog"

	"autosphere/internal/delivery/api/response"
	deliverycontext "autosphere/internal/delivery/context"
	"autosphere/internal/domain/entity"
	domainerrors "autosphere/internal/domain/errors"
	"autosphere/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoleMiddlewareParams holds dependencies for RoleMiddleware, injected by Fx.
type RoleMiddlewareParams struct {
	fx.In

	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// RoleMiddleware guards routes on the role of the active session principal.
type RoleMiddleware struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewRoleMiddleware is the constructor for RoleMiddleware.
func NewRoleMiddleware(params RoleMiddlewareParams) *RoleMiddleware {
	return &RoleMiddleware{
		session: params.Session,
		logger:  params.Logger,
	}
}

// RequireSession rejects requests made while nobody is signed in.
func (m *RoleMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireRole()(next)
}

// RequireRole admits the request when the active principal holds one of roles.
// With no roles it only requires a session.
func (m *RoleMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current := m.session.Current(c.Request().Context())
			if current == nil {
				return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())
			}

			if len(roles) > 0 && !current.HasRole(roles...) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
			}

			deliverycontext.EnrichLogger(c, m.logger,
				slog.String("principal", current.Email),
				slog.String("role", current.Role.String()),
			)

			return next(c)
		}
	}
}
