package impl

import (
	"context"
	"log/slog"
	"strings"

	"autosphere/config"
	deliverycontext "autosphere/internal/delivery/context"
	"autosphere/internal/domain/entity"
	domainerrors "autosphere/internal/domain/errors"
	"autosphere/internal/domain/service"
	"autosphere/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	session   usecase.SessionUsecase
	directory usecase.DirectoryUsecase
	inventory usecase.InventoryUsecase
	verifier  service.CredentialVerifier
	bootstrap config.BootstrapConfig
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Session   usecase.SessionUsecase
	Directory usecase.DirectoryUsecase
	Inventory usecase.InventoryUsecase
	Verifier  service.CredentialVerifier
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		session:   params.Session,
		directory: params.Directory,
		inventory: params.Inventory,
		verifier:  params.Verifier,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		srv.bootstrap = params.Config.Auth.Bootstrap
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Principal, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	stored, ok := srv.directory.Find(ctx, input.Email)
	if !ok || !srv.verifier.Verify(input.Password, stored.Password) {
		srv.log(ctx).Warn("Login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if stored.IsBlocked() {
		return nil, domainerrors.ErrAccountBlocked
	}

	principal, err := srv.session.Login(ctx, stored.Public())
	if err != nil {
		return nil, errors.Wrap(err, "failed to start session")
	}

	return principal, nil
}

func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Principal, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if srv.directory.Exists(ctx, input.Email) {
		return nil, domainerrors.ErrUserAlreadyExists.WithDetails(input.Email)
	}

	principal := entity.Principal{
		FName:   input.FName,
		LName:   input.LName,
		Email:   input.Email,
		Phone:   input.Phone,
		Country: input.Country,
		State:   input.State,
		Role:    srv.roleFor(input.Email),
	}.Normalize()

	if err := srv.store(ctx, principal, input.Password); err != nil {
		return nil, err
	}

	registered, err := srv.session.Register(ctx, principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to start session")
	}

	srv.log(ctx).Info("Account registered", slog.String("email", principal.Email), slog.String("role", principal.Role.String()))

	return registered, nil
}

// roleFor gives the bootstrap emails their elevated roles.
func (srv *accountService) roleFor(email string) entity.Role {
	switch {
	case srv.bootstrap.SuperadminEmail != "" && strings.EqualFold(email, srv.bootstrap.SuperadminEmail):
		return entity.RoleSuperadmin
	case srv.bootstrap.DealerEmail != "" && strings.EqualFold(email, srv.bootstrap.DealerEmail):
		return entity.RoleDealer
	default:
		return entity.RoleCustomer
	}
}

func (srv *accountService) store(ctx context.Context, principal entity.Principal, password string) error {
	sealed, err := srv.verifier.Seal(password)
	if err != nil {
		return errors.Wrap(err, "failed to seal credential")
	}

	added, err := srv.directory.AddUserIfAbsent(ctx, entity.StoredPrincipal{Principal: principal, Password: sealed})
	if err != nil {
		return errors.Wrap(err, "failed to add user")
	}
	if !added {
		return domainerrors.ErrUserAlreadyExists.WithDetails(principal.Email)
	}

	return nil
}

func (srv *accountService) Logout(ctx context.Context) error {
	return srv.session.Logout(ctx)
}

func (srv *accountService) Me(ctx context.Context) (*entity.Principal, error) {
	return requireRole(ctx, srv.session)
}

func (srv *accountService) UpdateProfile(ctx context.Context, patch entity.PrincipalPatch) (*entity.Principal, error) {
	current, err := requireRole(ctx, srv.session)
	if err != nil {
		return nil, err
	}
	if patch.Role != nil || patch.Status != nil {
		return nil, domainerrors.ErrForbidden.WithDetails("role and status are managed by a superadmin")
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	if _, err := srv.directory.UpdateUser(ctx, current.Email, patch); err != nil {
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to update directory record")
		}
		srv.log(ctx).Warn("Active principal has no directory record", slog.String("email", current.Email))
	}

	updated, err := srv.session.UpdateUser(ctx, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update session")
	}
	if updated == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	return updated, nil
}

func (srv *accountService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	current, err := requireRole(ctx, srv.session)
	if err != nil {
		return err
	}
	if err := validateStruct(input); err != nil {
		return err
	}

	stored, ok := srv.directory.Find(ctx, current.Email)
	if !ok {
		return domainerrors.ErrUserNotFound.WithDetails(current.Email)
	}
	if !srv.verifier.Verify(input.CurrentPassword, stored.Password) {
		return domainerrors.ErrInvalidCredentials.WithDetails("current password does not match")
	}

	sealed, err := srv.verifier.Seal(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to seal credential")
	}

	return srv.directory.SetPassword(ctx, current.Email, sealed)
}

func (srv *accountService) ListUsers(ctx context.Context) ([]entity.Principal, error) {
	if _, err := requireRole(ctx, srv.session, entity.RoleSuperadmin); err != nil {
		return nil, err
	}

	return srv.directory.List(ctx), nil
}

func (srv *accountService) AddUser(ctx context.Context, input usecase.AddUserInput) (*entity.Principal, error) {
	if _, err := requireRole(ctx, srv.session, entity.RoleSuperadmin); err != nil {
		return nil, err
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if srv.directory.Exists(ctx, input.Email) {
		return nil, domainerrors.ErrUserAlreadyExists.WithDetails(input.Email)
	}

	principal := entity.Principal{
		FName:   input.FName,
		LName:   input.LName,
		Email:   input.Email,
		Phone:   input.Phone,
		Country: input.Country,
		State:   input.State,
		Role:    input.Role,
		Status:  input.Status,
	}.Normalize()

	if err := srv.store(ctx, principal, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created by superadmin", slog.String("email", principal.Email))

	return &principal, nil
}

func (srv *accountService) EditUser(ctx context.Context, email string, patch entity.PrincipalPatch) (*entity.Principal, error) {
	current, err := requireRole(ctx, srv.session, entity.RoleSuperadmin)
	if err != nil {
		return nil, err
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	updated, err := srv.directory.UpdateUser(ctx, email, patch)
	if err != nil {
		return nil, err
	}

	if current.Email == email {
		if _, err := srv.session.UpdateUser(ctx, patch); err != nil {
			return nil, errors.Wrap(err, "failed to update session")
		}
	}

	return updated, nil
}

func (srv *accountService) DeleteUser(ctx context.Context, email string) (*usecase.DeleteUserOutput, error) {
	current, err := requireRole(ctx, srv.session, entity.RoleSuperadmin)
	if err != nil {
		return nil, err
	}
	if current.Email == email {
		return nil, domainerrors.ErrForbidden.WithDetails("you cannot delete your own account")
	}

	target, ok := srv.directory.Find(ctx, email)
	if !ok {
		return nil, domainerrors.ErrUserNotFound.WithDetails(email)
	}

	if err := srv.directory.DeleteUser(ctx, email); err != nil {
		return nil, err
	}

	out := &usecase.DeleteUserOutput{Email: email}
	if target.Role == entity.RoleDealer {
		removed, err := srv.inventory.DeleteCarsByDealer(ctx, email)
		if err != nil {
			srv.log(ctx).Error("Dealer deleted but listings remain",
				slog.String("email", email),
				slog.Any("error", err),
			)

			return nil, errors.Wrap(err, "failed to remove dealer listings")
		}
		out.RemovedListings = removed
	}

	srv.log(ctx).Info("User deleted by superadmin",
		slog.String("email", email),
		slog.Int("removedListings", out.RemovedListings),
	)

	return out, nil
}
