package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	deliverycontext "autosphere/internal/delivery/context"
	"autosphere/internal/domain/entity"
	domainerrors "autosphere/internal/domain/errors"
	"autosphere/internal/domain/repository"
	"autosphere/internal/domain/service"
	"autosphere/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	mu       sync.Mutex
	kv       repository.KVStore
	verifier service.CredentialVerifier
	seed     []entity.StoredPrincipal
	logger   *slog.Logger

	loaded bool
	users  []entity.StoredPrincipal
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	KV       repository.KVStore
	Verifier service.CredentialVerifier
	Seed     *entity.SeedCatalog
	Logger   *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	var seed []entity.StoredPrincipal
	if params.Seed != nil {
		seed = params.Seed.Users
	}

	return &directoryService{
		kv:       params.KV,
		verifier: params.Verifier,
		seed:     seed,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ensureLoaded reads registered_users once. Only an absent key is seeded:
// an explicitly stored empty list stays empty.
func (srv *directoryService) ensureLoaded(ctx context.Context) {
	if srv.loaded {
		return
	}

	srv.users = loadOrSeed(ctx, srv.kv, srv.log(ctx), repository.KeyDirectory, func() []entity.StoredPrincipal {
		return srv.sealedSeed(ctx)
	})
	if srv.users == nil {
		srv.users = []entity.StoredPrincipal{}
	}
	srv.loaded = true
}

// sealedSeed runs every seed password through the configured verifier.
func (srv *directoryService) sealedSeed(ctx context.Context) []entity.StoredPrincipal {
	out := make([]entity.StoredPrincipal, 0, len(srv.seed))
	for _, user := range srv.seed {
		sealed, err := srv.verifier.Seal(user.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to seal seed credential, skipping account",
				slog.String("email", user.Email),
				slog.Any("error", err),
			)

			continue
		}
		out = append(out, entity.StoredPrincipal{
			Principal: user.Principal.Normalize(),
			Password:  sealed,
		})
	}

	return out
}

func (srv *directoryService) commit(ctx context.Context, next []entity.StoredPrincipal) error {
	if err := persist(ctx, srv.kv, repository.KeyDirectory, next); err != nil {
		return errors.Wrap(err, "failed to persist directory")
	}
	srv.users = next

	return nil
}

func (srv *directoryService) AddUser(ctx context.Context, stored entity.StoredPrincipal) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	return srv.insert(ctx, stored)
}

func (srv *directoryService) AddUserIfAbsent(ctx context.Context, stored entity.StoredPrincipal) (bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	if srv.indexOf(stored.Email) >= 0 {
		return false, nil
	}

	return true, srv.insert(ctx, stored)
}

// insert appends stored; callers hold mu.
func (srv *directoryService) insert(ctx context.Context, stored entity.StoredPrincipal) error {
	next := append(cloneStored(srv.users), cloneOneStored(stored))
	if err := srv.commit(ctx, next); err != nil {
		return err
	}

	srv.log(ctx).Info("User added", slog.String("email", stored.Email), slog.String("role", stored.Role.String()))

	return nil
}

func (srv *directoryService) UpdateUser(ctx context.Context, email string, patch entity.PrincipalPatch) (*entity.Principal, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	idx := srv.indexOf(email)
	if idx < 0 {
		return nil, userNotFound(email)
	}

	next := cloneStored(srv.users)
	next[idx].Principal = patch.ApplyTo(next[idx].Principal)
	if err := srv.commit(ctx, next); err != nil {
		return nil, err
	}

	out := next[idx].Public()

	return &out, nil
}

func (srv *directoryService) SetPassword(ctx context.Context, email, sealed string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	idx := srv.indexOf(email)
	if idx < 0 {
		return userNotFound(email)
	}

	next := cloneStored(srv.users)
	next[idx].Password = sealed

	return srv.commit(ctx, next)
}

func (srv *directoryService) DeleteUser(ctx context.Context, email string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	idx := srv.indexOf(email)
	if idx < 0 {
		return userNotFound(email)
	}

	next := slices.Delete(cloneStored(srv.users), idx, idx+1)
	if err := srv.commit(ctx, next); err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted", slog.String("email", email))

	return nil
}

func (srv *directoryService) List(ctx context.Context) []entity.Principal {
	return srv.filter(ctx, func(entity.StoredPrincipal) bool { return true })
}

func (srv *directoryService) ListByRole(ctx context.Context, role entity.Role) []entity.Principal {
	return srv.filter(ctx, func(user entity.StoredPrincipal) bool { return user.Role == role })
}

func (srv *directoryService) Find(ctx context.Context, email string) (*entity.StoredPrincipal, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	idx := srv.indexOf(email)
	if idx < 0 {
		return nil, false
	}
	found := cloneOneStored(srv.users[idx])

	return &found, true
}

func (srv *directoryService) Exists(ctx context.Context, email string) bool {
	_, ok := srv.Find(ctx, email)

	return ok
}

func (srv *directoryService) filter(ctx context.Context, keep func(entity.StoredPrincipal) bool) []entity.Principal {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	out := make([]entity.Principal, 0, len(srv.users))
	for _, user := range srv.users {
		if keep(user) {
			out = append(out, user.Public())
		}
	}

	return out
}

func (srv *directoryService) indexOf(email string) int {
	return slices.IndexFunc(srv.users, func(user entity.StoredPrincipal) bool {
		return user.Email == email
	})
}

func userNotFound(email string) error {
	return domainerrors.ErrUserNotFound.WithDetails(email)
}

func cloneOneStored(user entity.StoredPrincipal) entity.StoredPrincipal {
	return entity.StoredPrincipal{Principal: user.Principal.Clone(), Password: user.Password}
}

func cloneStored(users []entity.StoredPrincipal) []entity.StoredPrincipal {
	out := make([]entity.StoredPrincipal, len(users))
	for i, user := range users {
		out[i] = cloneOneStored(user)
	}

	return out
}
