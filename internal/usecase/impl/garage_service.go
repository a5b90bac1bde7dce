package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"autosphere/config"
	deliverycontext "autosphere/internal/delivery/context"
	"autosphere/internal/domain/entity"
	domainerrors "autosphere/internal/domain/errors"
	"autosphere/internal/domain/repository"
	"autosphere/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// garageService implements the GarageUsecase interface.
//
// The favorites, recently viewed and compare lists belong to whoever is
// signed in (or the guest). They are re-read whenever the session principal
// differs from the owner they were loaded for.
type garageService struct {
	mu      sync.Mutex
	kv      repository.KVStore
	session usecase.SessionUsecase
	limits  config.GarageConfig
	seed    *entity.SeedCatalog
	logger  *slog.Logger

	owner          string
	ownerLoaded    bool
	favorites      []int64
	recentlyViewed []int64
	compareItems   []int64

	sharedLoaded bool
	testDrives   []entity.TestDrive
	purchases    []entity.Purchase
}

// GarageServiceParams holds dependencies for GarageService, injected by Fx.
type GarageServiceParams struct {
	fx.In

	KV      repository.KVStore
	Session usecase.SessionUsecase
	Config  *config.Config
	Seed    *entity.SeedCatalog
	Logger  *slog.Logger
}

// NewGarageService is the constructor for garageService.
func NewGarageService(params GarageServiceParams) usecase.GarageUsecase {
	limits := config.GarageConfig{CompareLimit: 4, RecentlyViewedLimit: 5}
	if params.Config != nil && params.Config.Garage != nil {
		if params.Config.Garage.CompareLimit > 0 {
			limits.CompareLimit = params.Config.Garage.CompareLimit
		}
		if params.Config.Garage.RecentlyViewedLimit > 0 {
			limits.RecentlyViewedLimit = params.Config.Garage.RecentlyViewedLimit
		}
	}

	seed := params.Seed
	if seed == nil {
		seed = &entity.SeedCatalog{}
	}

	return &garageService{
		kv:      params.KV,
		session: params.Session,
		limits:  limits,
		seed:    seed,
		logger:  params.Logger,
	}
}

func (srv *garageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// syncOwner points the per-owner lists at the current principal and returns the
// principal's email, or "" when signed out.
func (srv *garageService) syncOwner(ctx context.Context) string {
	email := ""
	owner := entity.GuestKey
	if current := srv.session.Current(ctx); current != nil {
		email = current.Email
		owner = current.Email
	}

	if !srv.ownerLoaded || srv.owner != owner {
		srv.owner = owner
		srv.favorites = srv.loadIDs(ctx, repository.FavoritesKey(owner))
		srv.recentlyViewed = srv.loadIDs(ctx, repository.RecentlyViewedKey(owner))
		srv.compareItems = srv.loadIDs(ctx, repository.CompareItemsKey(owner))
		srv.ownerLoaded = true
	}

	if !srv.sharedLoaded {
		srv.testDrives = loadOrSeed(ctx, srv.kv, srv.log(ctx), repository.KeyTestDrives, func() []entity.TestDrive {
			return slices.Clone(srv.seed.TestDrives)
		})
		srv.purchases = loadOrSeed(ctx, srv.kv, srv.log(ctx), repository.KeyPurchases, func() []entity.Purchase {
			return slices.Clone(srv.seed.Purchases)
		})
		srv.sharedLoaded = true
	}

	return email
}

func (srv *garageService) loadIDs(ctx context.Context, key string) []int64 {
	ids, ok := loadOptional[[]int64](ctx, srv.kv, srv.log(ctx), key)
	if !ok || ids == nil {
		return []int64{}
	}

	return ids
}

func (srv *garageService) requireOwner(ctx context.Context) error {
	if srv.syncOwner(ctx) == "" {
		return domainerrors.ErrUnauthorized.WithDetails("sign in to manage your garage")
	}

	return nil
}

func (srv *garageService) ToggleFavorite(ctx context.Context, carID int64) (bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.requireOwner(ctx); err != nil {
		return false, err
	}

	next, added := toggleID(srv.favorites, carID)
	if err := persist(ctx, srv.kv, repository.FavoritesKey(srv.owner), next); err != nil {
		return false, errors.Wrap(err, "failed to persist favorites")
	}
	srv.favorites = next

	return added, nil
}

func (srv *garageService) AddRecentlyViewed(ctx context.Context, carID int64) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.syncOwner(ctx) == "" {
		return nil
	}

	next := make([]int64, 0, srv.limits.RecentlyViewedLimit)
	next = append(next, carID)
	for _, id := range srv.recentlyViewed {
		if id != carID {
			next = append(next, id)
		}
	}
	if len(next) > srv.limits.RecentlyViewedLimit {
		next = next[:srv.limits.RecentlyViewedLimit]
	}

	if err := persist(ctx, srv.kv, repository.RecentlyViewedKey(srv.owner), next); err != nil {
		return errors.Wrap(err, "failed to persist recently viewed")
	}
	srv.recentlyViewed = next

	return nil
}

func (srv *garageService) ToggleCompare(ctx context.Context, carID int64) (bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.requireOwner(ctx); err != nil {
		return false, err
	}

	if !slices.Contains(srv.compareItems, carID) && len(srv.compareItems) >= srv.limits.CompareLimit {
		return false, domainerrors.ErrCompareLimitExceeded
	}

	next, added := toggleID(srv.compareItems, carID)
	if err := persist(ctx, srv.kv, repository.CompareItemsKey(srv.owner), next); err != nil {
		return false, errors.Wrap(err, "failed to persist compare items")
	}
	srv.compareItems = next

	return added, nil
}

func (srv *garageService) ClearCompare(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.syncOwner(ctx)

	next := []int64{}
	if err := persist(ctx, srv.kv, repository.CompareItemsKey(srv.owner), next); err != nil {
		return errors.Wrap(err, "failed to persist compare items")
	}
	srv.compareItems = next

	return nil
}

func (srv *garageService) BookTestDrive(ctx context.Context, input usecase.BookTestDriveInput) (*entity.TestDrive, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	email := srv.syncOwner(ctx)
	if email == "" {
		return nil, domainerrors.ErrUnauthorized.WithDetails("sign in to book a test drive")
	}

	var id int64
	for _, drive := range srv.testDrives {
		id = max(id, drive.ID)
	}

	drive := entity.TestDrive{
		ID:          id + 1,
		CarID:       input.CarID,
		BookingDate: input.BookingDate,
		Location:    input.Location,
		Status:      entity.TestDrivePending,
	}
	if err := srv.commitTestDrives(ctx, append(slices.Clone(srv.testDrives), drive)); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Test drive booked",
		slog.Int64("testDriveID", drive.ID),
		slog.Int64("carID", drive.CarID),
		slog.String("email", email),
	)

	return &drive, nil
}

func (srv *garageService) CancelTestDrive(ctx context.Context, id int64) (*entity.TestDrive, error) {
	return srv.updateTestDrive(ctx, id, func(drive *entity.TestDrive) {
		drive.Status = entity.TestDriveCancelled
	})
}

// RescheduleTestDrive moves the booking to bookingDate and marks it Approved,
// whatever state it was in before.
func (srv *garageService) RescheduleTestDrive(ctx context.Context, id int64, bookingDate string) (*entity.TestDrive, error) {
	if bookingDate == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("bookingDate is required")
	}

	return srv.updateTestDrive(ctx, id, func(drive *entity.TestDrive) {
		drive.BookingDate = bookingDate
		drive.Status = entity.TestDriveApproved
	})
}

func (srv *garageService) updateTestDrive(ctx context.Context, id int64, mutate func(*entity.TestDrive)) (*entity.TestDrive, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.syncOwner(ctx)

	idx := slices.IndexFunc(srv.testDrives, func(drive entity.TestDrive) bool { return drive.ID == id })
	if idx < 0 {
		return nil, domainerrors.ErrTestDriveNotFound.WithDetails(strconv.FormatInt(id, 10))
	}

	next := slices.Clone(srv.testDrives)
	mutate(&next[idx])
	if err := srv.commitTestDrives(ctx, next); err != nil {
		return nil, err
	}

	out := next[idx]

	return &out, nil
}

func (srv *garageService) commitTestDrives(ctx context.Context, next []entity.TestDrive) error {
	if err := persist(ctx, srv.kv, repository.KeyTestDrives, next); err != nil {
		return errors.Wrap(err, "failed to persist test drives")
	}
	srv.testDrives = next

	return nil
}

func (srv *garageService) Snapshot(ctx context.Context) entity.Garage {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.syncOwner(ctx)

	return entity.Garage{
		Favorites:      slices.Clone(srv.favorites),
		RecentlyViewed: slices.Clone(srv.recentlyViewed),
		CompareItems:   slices.Clone(srv.compareItems),
		TestDrives:     append([]entity.TestDrive{}, srv.testDrives...),
		Purchases:      append([]entity.Purchase{}, srv.purchases...),
	}
}

// toggleID returns ids with id removed if present, otherwise appended.
func toggleID(ids []int64, id int64) (next []int64, added bool) {
	if idx := slices.Index(ids, id); idx >= 0 {
		return slices.Delete(slices.Clone(ids), idx, idx+1), false
	}

	return append(slices.Clone(ids), id), true
}
