package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
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

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	mu     sync.Mutex
	kv     repository.KVStore
	ids    service.IDAllocator
	seed   []entity.Car
	logger *slog.Logger

	loaded bool
	cars   []entity.Car
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	KV     repository.KVStore
	IDs    service.IDAllocator
	Seed   *entity.SeedCatalog
	Logger *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	var seed []entity.Car
	if params.Seed != nil {
		seed = params.Seed.Cars
	}

	return &inventoryService{
		kv:     params.KV,
		ids:    params.IDs,
		seed:   seed,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *inventoryService) ensureLoaded(ctx context.Context) {
	if srv.loaded {
		return
	}

	srv.cars = loadOrSeed(ctx, srv.kv, srv.log(ctx), repository.KeyInventory, func() []entity.Car {
		return cloneCars(srv.seed)
	})
	srv.loaded = true
}

// commit persists the next inventory and only then replaces the in-memory copy.
func (srv *inventoryService) commit(ctx context.Context, next []entity.Car) error {
	if err := persist(ctx, srv.kv, repository.KeyInventory, next); err != nil {
		return errors.Wrap(err, "failed to persist inventory")
	}
	srv.cars = next

	return nil
}

func (srv *inventoryService) AddCar(ctx context.Context, draft entity.CarDraft, dealerID string) (*entity.Car, error) {
	if err := validateStruct(draft); err != nil {
		return nil, err
	}
	if strings.TrimSpace(dealerID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dealerId is required")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	var floor int64
	for _, car := range srv.cars {
		floor = max(floor, car.ID)
	}

	id, err := srv.ids.NextID(ctx, floor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate car id")
	}

	car := entity.NewCar(id, dealerID, draft)
	next := append(cloneCars(srv.cars), car)
	if err := srv.commit(ctx, next); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Car added", slog.Int64("carID", id), slog.String("dealerID", dealerID))

	out := car.Clone()

	return &out, nil
}

func (srv *inventoryService) UpdateCar(ctx context.Context, car entity.Car) (*entity.Car, error) {
	if err := validateStruct(car.CarDraft); err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	idx := srv.indexOf(car.ID)
	if idx < 0 {
		return nil, carNotFound(car.ID)
	}

	next := cloneCars(srv.cars)
	next[idx] = car.Clone()
	if err := srv.commit(ctx, next); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Car updated", slog.Int64("carID", car.ID))

	out := car.Clone()

	return &out, nil
}

func (srv *inventoryService) DeleteCar(ctx context.Context, id int64) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	idx := srv.indexOf(id)
	if idx < 0 {
		return carNotFound(id)
	}

	next := slices.Delete(cloneCars(srv.cars), idx, idx+1)
	if err := srv.commit(ctx, next); err != nil {
		return err
	}

	srv.log(ctx).Info("Car deleted", slog.Int64("carID", id))

	return nil
}

func (srv *inventoryService) DeleteCarsByDealer(ctx context.Context, dealerID string) (int, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	next := slices.DeleteFunc(cloneCars(srv.cars), func(car entity.Car) bool {
		return car.OwnedBy(dealerID)
	})
	removed := len(srv.cars) - len(next)
	if removed == 0 {
		return 0, nil
	}

	if err := srv.commit(ctx, next); err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Dealer listings removed", slog.String("dealerID", dealerID), slog.Int("count", removed))

	return removed, nil
}

func (srv *inventoryService) List(ctx context.Context) []entity.Car {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	return cloneCars(srv.cars)
}

func (srv *inventoryService) Get(ctx context.Context, id int64) (*entity.Car, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	idx := srv.indexOf(id)
	if idx < 0 {
		return nil, carNotFound(id)
	}
	car := srv.cars[idx].Clone()

	return &car, nil
}

func (srv *inventoryService) ListByIDs(ctx context.Context, ids []int64) []entity.Car {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	out := make([]entity.Car, 0, len(ids))
	for _, id := range ids {
		if idx := srv.indexOf(id); idx >= 0 {
			out = append(out, srv.cars[idx].Clone())
		}
	}

	return out
}

func (srv *inventoryService) ListByDealer(ctx context.Context, dealerID string) []entity.Car {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	out := make([]entity.Car, 0)
	for _, car := range srv.cars {
		if car.OwnedBy(dealerID) {
			out = append(out, car.Clone())
		}
	}

	return out
}

func (srv *inventoryService) Makes(ctx context.Context) []string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	makes := make([]string, 0, len(srv.cars))
	for _, car := range srv.cars {
		makes = append(makes, car.Make)
	}
	slices.Sort(makes)

	return slices.Compact(makes)
}

// Search filters by a case-insensitive substring of make or model and by
// exact make and condition, then sorts stably.
func (srv *inventoryService) Search(ctx context.Context, query entity.InventoryQuery) ([]entity.Car, error) {
	sortKey := query.EffectiveSort()
	if !sortKey.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown sort option: " + string(sortKey))
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.ensureLoaded(ctx)

	term := strings.ToLower(strings.TrimSpace(query.Search))
	out := make([]entity.Car, 0, len(srv.cars))
	for _, car := range srv.cars {
		if term != "" &&
			!strings.Contains(strings.ToLower(car.Make), term) &&
			!strings.Contains(strings.ToLower(car.Model), term) {
			continue
		}
		if !matchesFilter(query.Make, car.Make) || !matchesFilter(query.Condition, string(car.Condition)) {
			continue
		}
		out = append(out, car.Clone())
	}

	slices.SortStableFunc(out, compareCars(sortKey))

	return out, nil
}

func (srv *inventoryService) indexOf(id int64) int {
	return slices.IndexFunc(srv.cars, func(car entity.Car) bool {
		return car.ID == id
	})
}

func matchesFilter(filter, value string) bool {
	return filter == "" || filter == entity.FilterAll || filter == value
}

func compareCars(key entity.SortKey) func(a, b entity.Car) int {
	switch key {
	case entity.SortPriceDesc:
		return func(a, b entity.Car) int { return cmp.Compare(b.Price, a.Price) }
	case entity.SortYearDesc:
		return func(a, b entity.Car) int { return cmp.Compare(b.Year, a.Year) }
	case entity.SortMileageAsc:
		return func(a, b entity.Car) int { return cmp.Compare(a.Mileage, b.Mileage) }
	default:
		return func(a, b entity.Car) int { return cmp.Compare(a.Price, b.Price) }
	}
}

func carNotFound(id int64) error {
	return domainerrors.ErrCarNotFound.WithDetails("car " + strconv.FormatInt(id, 10))
}

func cloneCars(cars []entity.Car) []entity.Car {
	out := make([]entity.Car, len(cars))
	for i, car := range cars {
		out[i] = car.Clone()
	}

	return out
}
