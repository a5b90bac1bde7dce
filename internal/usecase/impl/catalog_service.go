package impl

import (
	"context"
	"log/slog"

	deliverycontext "autosphere/internal/delivery/context"
	"autosphere/internal/domain/entity"
	domainerrors "autosphere/internal/domain/errors"
	"autosphere/internal/usecase"

	"go.uber.org/fx"
)

// homeSectionSize caps the home sections that fall back to tag matching.
const homeSectionSize = 3

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	session     usecase.SessionUsecase
	inventory   usecase.InventoryUsecase
	siteContent usecase.SiteContentUsecase
	garage      usecase.GarageUsecase
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Session     usecase.SessionUsecase
	Inventory   usecase.InventoryUsecase
	SiteContent usecase.SiteContentUsecase
	Garage      usecase.GarageUsecase
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		session:     params.Session,
		inventory:   params.Inventory,
		siteContent: params.SiteContent,
		garage:      params.Garage,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Browse only accepts the sort and condition options the site currently offers.
func (srv *catalogService) Browse(ctx context.Context, query entity.InventoryQuery) (*usecase.BrowseOutput, error) {
	settings := srv.siteContent.Get(ctx).InventorySettings

	if !settings.AllowsSort(query.Sort) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sort option not offered: " + string(query.Sort))
	}
	if !settings.AllowsCondition(query.Condition) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("condition filter not offered: " + query.Condition)
	}

	cars, err := srv.inventory.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	return &usecase.BrowseOutput{
		Cars:             cars,
		Makes:            srv.inventory.Makes(ctx),
		SortOptions:      settings.SortOptions,
		ConditionFilters: settings.ConditionFilters,
	}, nil
}

func (srv *catalogService) Home(ctx context.Context) (*usecase.HomeOutput, error) {
	content := srv.siteContent.Get(ctx)
	all := srv.inventory.List(ctx)

	out := &usecase.HomeOutput{
		SiteName:    content.SiteName,
		Hero:        content.Hero,
		NewArrivals: srv.section(ctx, all, content.NewArrivalsCarIDs, hasTag(entity.TagNewArrival)),
		BestDeals:   srv.section(ctx, all, content.BestDealsCarIDs, hasTag(entity.TagBestDeal)),
		Trending:    srv.section(ctx, all, content.TrendingCarsCarIDs, hasTag(entity.TagTrending)),
		UsedCars: srv.section(ctx, all, content.UsedCarsCarIDs, func(car entity.Car) bool {
			return car.Condition == entity.ConditionUsed
		}),
	}

	if id := content.DealOfTheWeekCarID; id != nil {
		car, err := srv.inventory.Get(ctx, *id)
		if err == nil {
			out.DealOfTheWeek = car
		} else {
			srv.log(ctx).Warn("Deal of the week points at a missing car", slog.Int64("carID", *id))
		}
	}

	return out, nil
}

// section resolves a curated id list, or falls back to the first matching cars.
func (srv *catalogService) section(ctx context.Context, all []entity.Car, curated []int64, match func(entity.Car) bool) []entity.Car {
	if len(curated) > 0 {
		return srv.inventory.ListByIDs(ctx, curated)
	}

	out := make([]entity.Car, 0, homeSectionSize)
	for _, car := range all {
		if len(out) == homeSectionSize {
			break
		}
		if match(car) {
			out = append(out, car)
		}
	}

	return out
}

func hasTag(tag entity.Tag) func(entity.Car) bool {
	return func(car entity.Car) bool { return car.Tag == tag }
}

func (srv *catalogService) CarDetail(ctx context.Context, id int64) (*entity.Car, error) {
	car, err := srv.inventory.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.garage.AddRecentlyViewed(ctx, car.ID); err != nil {
		srv.log(ctx).Warn("Failed to record recently viewed car", slog.Int64("carID", car.ID), slog.Any("error", err))
	}

	return car, nil
}

func (srv *catalogService) Garage(ctx context.Context) (*usecase.GarageOutput, error) {
	if _, err := requireRole(ctx, srv.session); err != nil {
		return nil, err
	}

	snapshot := srv.garage.Snapshot(ctx)

	return &usecase.GarageOutput{
		Favorites:      srv.inventory.ListByIDs(ctx, snapshot.Favorites),
		RecentlyViewed: srv.inventory.ListByIDs(ctx, snapshot.RecentlyViewed),
		CompareItems:   srv.inventory.ListByIDs(ctx, snapshot.CompareItems),
		TestDrives:     snapshot.TestDrives,
		Purchases:      snapshot.Purchases,
	}, nil
}

func (srv *catalogService) SiteContent(ctx context.Context) entity.SiteContent {
	return srv.siteContent.Get(ctx)
}

func (srv *catalogService) UpdateSiteContent(ctx context.Context, patch entity.SiteContentPatch) (*entity.SiteContent, error) {
	admin, err := requireRole(ctx, srv.session, entity.RoleSuperadmin)
	if err != nil {
		return nil, err
	}

	if settings := patch.InventorySettings; settings != nil {
		for _, option := range settings.SortOptions {
			if !entity.SortKey(option).IsValid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails("unknown sort option: " + option)
			}
		}
	}

	updated, err := srv.siteContent.Update(ctx, patch)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Site content edited", slog.String("by", admin.Email))

	return updated, nil
}
