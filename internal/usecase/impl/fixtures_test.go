package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"autosphere/config"
	"autosphere/internal/domain/entity"
	"autosphere/internal/domain/repository"
	"autosphere/internal/infra/auth"
	"autosphere/internal/infra/idgen"
	"autosphere/internal/infra/persistence/memory"
	"autosphere/internal/infra/qrcode"
	"autosphere/internal/usecase"

	"github.com/stretchr/testify/require"
)

const (
	testSuperadminEmail = "admin@example.com"
	testDealerEmail     = "dealer@example.com"
	testOtherDealer     = "other-dealer@example.com"
	testCustomerEmail   = "customer@example.com"
	testPassword        = "secret123"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDraft(carMake, model string) entity.CarDraft {
	return entity.CarDraft{
		Make:         carMake,
		Model:        model,
		Year:         2022,
		Price:        30000,
		Mileage:      1000,
		FuelType:     entity.FuelGasoline,
		Transmission: entity.TransmissionAutomatic,
		Engine:       "2.0L",
		Horsepower:   200,
		Features:     []string{"Bluetooth"},
		Images:       []string{"https://example.com/car.jpg"},
		Description:  "A test car",
		Condition:    entity.ConditionNew,
	}
}

type carSpec struct {
	id        int64
	dealer    string
	make      string
	model     string
	year      int
	price     int64
	mileage   int64
	condition entity.Condition
	tag       entity.Tag
}

func (s carSpec) car() entity.Car {
	draft := testDraft(s.make, s.model)
	draft.Year = s.year
	draft.Price = s.price
	draft.Mileage = s.mileage
	draft.Condition = s.condition
	draft.Tag = s.tag

	return entity.NewCar(s.id, s.dealer, draft)
}

func testSeedCars() []entity.Car {
	specs := []carSpec{
		{1, testDealerEmail, "Tesla", "Model S", 2023, 90000, 1500, entity.ConditionUsed, entity.TagTrending},
		{2, testDealerEmail, "Ford", "Mustang", 2024, 55000, 50, entity.ConditionNew, entity.TagNewArrival},
		{3, testOtherDealer, "Porsche", "911", 2021, 120000, 12000, entity.ConditionUsed, entity.TagTrending},
		{4, testOtherDealer, "Toyota", "Camry", 2024, 28000, 10, entity.ConditionNew, entity.TagBestDeal},
		{5, testDealerEmail, "BMW", "X5", 2020, 45000, 30000, entity.ConditionUsed, ""},
		{6, testDealerEmail, "Ford", "F-150", 2022, 48000, 8000, entity.ConditionUsed, entity.TagBestDeal},
	}

	cars := make([]entity.Car, 0, len(specs))
	for _, spec := range specs {
		cars = append(cars, spec.car())
	}

	return cars
}

func testSeedCatalog() *entity.SeedCatalog {
	dealOfTheWeek := int64(4)

	return &entity.SeedCatalog{
		Cars: testSeedCars(),
		Users: []entity.StoredPrincipal{
			{Principal: entity.Principal{FName: "Ada", LName: "Admin", Email: testSuperadminEmail, Role: entity.RoleSuperadmin}, Password: testPassword},
			{Principal: entity.Principal{FName: "Dan", LName: "Dealer", Email: testDealerEmail, Role: entity.RoleDealer}, Password: testPassword},
			{Principal: entity.Principal{FName: "Olu", LName: "Other", Email: testOtherDealer, Role: entity.RoleDealer}, Password: testPassword},
			{Principal: entity.Principal{FName: "Cy", LName: "Customer", Email: testCustomerEmail}, Password: testPassword},
		},
		SiteContent: entity.SiteContent{
			SiteName:           "AutoSphere",
			Hero:               entity.Hero{Title: "Drive", Subtitle: "Find your car", Image: "hero.jpg"},
			NewArrivalsCarIDs:  []int64{},
			BestDealsCarIDs:    []int64{},
			TrendingCarsCarIDs: []int64{},
			UsedCarsCarIDs:     []int64{},
			DealOfTheWeekCarID: &dealOfTheWeek,
			InventorySettings: entity.InventorySettings{
				SortOptions:      []string{"price-asc", "price-desc", "year-desc", "mileage-asc"},
				ConditionFilters: []string{"all", "New", "Used"},
			},
		},
		TestDrives: []entity.TestDrive{
			{ID: 1, CarID: 2, BookingDate: "2024-08-15T10:00", Location: "Lagos", Status: entity.TestDriveApproved},
			{ID: 2, CarID: 6, BookingDate: "2024-08-22T14:30", Location: "Abuja", Status: entity.TestDrivePending},
			{ID: 3, CarID: 3, BookingDate: "2024-06-02T11:00", Location: "Lagos", Status: entity.TestDriveCompleted},
		},
		Purchases: []entity.Purchase{
			{ID: 1, CarID: 5, PurchaseDate: "2023-11-20", PricePaid: 44000, Dealership: "AutoSphere Lagos"},
		},
	}
}

// testApp wires every service over one KV store, the way the process does.
type testApp struct {
	kv          repository.KVStore
	cfg         *config.Config
	session     usecase.SessionUsecase
	inventory   usecase.InventoryUsecase
	directory   usecase.DirectoryUsecase
	siteContent usecase.SiteContentUsecase
	garage      usecase.GarageUsecase
	account     usecase.AccountUsecase
	listing     usecase.ListingUsecase
	catalog     usecase.CatalogUsecase
}

func createTestApp(t *testing.T) testApp {
	t.Helper()

	return createTestAppWithKV(t, memory.NewKVStore())
}

func createTestAppWithKV(t *testing.T, kv repository.KVStore) testApp {
	t.Helper()

	logger := newDiscardLogger()
	seed := testSeedCatalog()
	verifier := auth.NewPlaintextVerifier()

	cfg := config.Default()
	cfg.HTTP.PublicBaseURL = "https://autosphere.test"
	cfg.Auth.Bootstrap = config.BootstrapConfig{
		SuperadminEmail: "boss@example.com",
		DealerEmail:     "seller@example.com",
	}

	app := testApp{kv: kv, cfg: cfg}
	app.session = NewSessionService(kv, logger)
	app.inventory = NewInventoryService(InventoryServiceParams{KV: kv, IDs: idgen.NewAllocator(kv, logger), Seed: seed, Logger: logger})
	app.directory = NewDirectoryService(DirectoryServiceParams{KV: kv, Verifier: verifier, Seed: seed, Logger: logger})
	app.siteContent = NewSiteContentService(kv, seed, logger)
	app.garage = NewGarageService(GarageServiceParams{KV: kv, Session: app.session, Config: cfg, Seed: seed, Logger: logger})
	app.account = NewAccountService(AccountServiceParams{
		Session:   app.session,
		Directory: app.directory,
		Inventory: app.inventory,
		Verifier:  verifier,
		Config:    cfg,
		Logger:    logger,
	})
	app.listing = NewListingService(ListingServiceParams{
		Session:     app.session,
		Inventory:   app.inventory,
		Directory:   app.directory,
		SiteContent: app.siteContent,
		QRCode:      qrcode.NewQRCodeService(cfg),
		Logger:      logger,
	})
	app.catalog = NewCatalogService(CatalogServiceParams{
		Session:     app.session,
		Inventory:   app.inventory,
		SiteContent: app.siteContent,
		Garage:      app.garage,
		Logger:      logger,
	})

	return app
}

// signIn authenticates one of the seeded accounts.
func (app testApp) signIn(t *testing.T, email string) *entity.Principal {
	t.Helper()

	principal, err := app.account.Login(context.Background(), usecase.LoginInput{Email: email, Password: testPassword})
	require.NoError(t, err)

	return principal
}

func ptr[T any](v T) *T {
	return &v
}
