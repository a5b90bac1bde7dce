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

type siteContentService struct {
	mu     sync.Mutex
	kv     repository.KVStore
	seed   entity.SiteContent
	logger *slog.Logger

	loaded  bool
	content entity.SiteContent
}

// NewSiteContentService is the constructor for siteContentService.
func NewSiteContentService(kv repository.KVStore, seed *entity.SeedCatalog, logger *slog.Logger) usecase.SiteContentUsecase {
	srv := &siteContentService{
		kv:     kv,
		logger: logger,
	}
	if seed != nil {
		srv.seed = seed.SiteContent.Clone()
	}

	return srv
}

func (srv *siteContentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *siteContentService) ensureLoaded(ctx context.Context) {
	if srv.loaded {
		return
	}

	srv.content = loadOrSeed(ctx, srv.kv, srv.log(ctx), repository.KeySiteContent, srv.seed.Clone)
	srv.loaded = true
}

func (srv *siteContentService) commit(ctx context.Context, next entity.SiteContent) (*entity.SiteContent, error) {
	if err := persist(ctx, srv.kv, repository.KeySiteContent, next); err != nil {
		return nil, errors.Wrap(err, "failed to persist site content")
	}
	srv.content = next

	out := next.Clone()

	return &out, nil
}

func (srv *siteContentService) Get(ctx context.Context) entity.SiteContent {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	return srv.content.Clone()
}

func (srv *siteContentService) Update(ctx context.Context, patch entity.SiteContentPatch) (*entity.SiteContent, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	out, err := srv.commit(ctx, patch.ApplyTo(srv.content))
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Site content updated")

	return out, nil
}

func (srv *siteContentService) ClearDealOfTheWeek(ctx context.Context) (*entity.SiteContent, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	next := srv.content.Clone()
	next.DealOfTheWeekCarID = nil

	return srv.commit(ctx, next)
}
