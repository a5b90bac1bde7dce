package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "autosphere/internal/delivery/context"
	"autosphere/internal/domain/entity"
	"autosphere/internal/domain/repository"
	"autosphere/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	mu     sync.Mutex
	kv     repository.KVStore
	logger *slog.Logger

	loaded bool
	active *entity.Principal
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(kv repository.KVStore, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		kv:     kv,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ensureLoaded restores the cached principal once. Cached records are
// normalized so records written before a field existed gain its default.
func (srv *sessionService) ensureLoaded(ctx context.Context) {
	if srv.loaded {
		return
	}
	srv.loaded = true

	cached, ok := loadOptional[entity.Principal](ctx, srv.kv, srv.log(ctx), repository.KeySession)
	if !ok {
		return
	}

	normalized := cached.Normalize()
	srv.active = &normalized
}

func (srv *sessionService) Login(ctx context.Context, principal entity.Principal) (*entity.Principal, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	return srv.activate(ctx, principal.Normalize())
}

func (srv *sessionService) Register(ctx context.Context, principal entity.Principal) (*entity.Principal, error) {
	return srv.Login(ctx, principal)
}

func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	if err := srv.kv.Delete(ctx, repository.KeySession); err != nil {
		return errors.Wrap(err, "failed to clear session cache")
	}
	srv.active = nil

	srv.log(ctx).Info("Session cleared")

	return nil
}

func (srv *sessionService) UpdateUser(ctx context.Context, patch entity.PrincipalPatch) (*entity.Principal, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	if srv.active == nil {
		return nil, nil
	}

	return srv.activate(ctx, patch.ApplyTo(*srv.active))
}

func (srv *sessionService) Current(ctx context.Context) *entity.Principal {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	if srv.active == nil {
		return nil
	}
	current := srv.active.Clone()

	return &current
}

func (srv *sessionService) Role(ctx context.Context) entity.Role {
	if current := srv.Current(ctx); current != nil {
		return current.Role
	}

	return ""
}

// activate persists principal as the session cache, then makes it active.
func (srv *sessionService) activate(ctx context.Context, principal entity.Principal) (*entity.Principal, error) {
	if err := persist(ctx, srv.kv, repository.KeySession, principal); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.active = &principal
	srv.log(ctx).Info("Session activated", slog.String("email", principal.Email), slog.String("role", principal.Role.String()))

	out := principal.Clone()

	return &out, nil
}
