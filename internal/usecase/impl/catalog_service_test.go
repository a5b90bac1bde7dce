package impl

import (
	"context"
	"testing"

	"autosphere/internal/domain/entity"
	domainerrors "autosphere/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Browse(t *testing.T) {
	app := createTestApp(t)
	ctx := context.Background()

	out, err := app.catalog.Browse(ctx, entity.InventoryQuery{Condition: "Used", Sort: entity.SortPriceDesc})
	require.NoError(t, err)

	assert.Equal(t, []int64{3, 1, 6, 5}, carIDs(out.Cars))
	assert.Equal(t, []string{"BMW", "Ford", "Porsche", "Tesla", "Toyota"}, out.Makes)
	assert.Equal(t, []string{"all", "New", "Used"}, out.ConditionFilters)
	assert.Len(t, out.SortOptions, 4)
}

func TestCatalogService_BrowseHonorsAllowLists(t *testing.T) {
	app := createTestApp(t)
	ctx := context.Background()
	app.signIn(t, testSuperadminEmail)

	_, err := app.catalog.UpdateSiteContent(ctx, entity.SiteContentPatch{
		InventorySettings: &entity.InventorySettings{
			SortOptions:      []string{"price-asc"},
			ConditionFilters: []string{"all", "New"},
		},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		query   entity.InventoryQuery
		wantErr bool
	}{
		{name: "default query", query: entity.InventoryQuery{}},
		{name: "offered sort", query: entity.InventoryQuery{Sort: entity.SortPriceAsc}},
		{name: "withdrawn sort", query: entity.InventoryQuery{Sort: entity.SortYearDesc}, wantErr: true},
		{name: "offered condition", query: entity.InventoryQuery{Condition: "New"}},
		{name: "withdrawn condition", query: entity.InventoryQuery{Condition: "Used"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.catalog.Browse(ctx, tt.query)

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCatalogService_HomeFallsBackToTags(t *testing.T) {
	app := createTestApp(t)

	home, err := app.catalog.Home(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "AutoSphere", home.SiteName)
	assert.Equal(t, []int64{2}, carIDs(home.NewArrivals))
	assert.Equal(t, []int64{4, 6}, carIDs(home.BestDeals))
	assert.Equal(t, []int64{1, 3}, carIDs(home.Trending))
	assert.Equal(t, []int64{1, 3, 5}, carIDs(home.UsedCars))
	require.NotNil(t, home.DealOfTheWeek)
	assert.Equal(t, int64(4), home.DealOfTheWeek.ID)
}

func TestCatalogService_HomeUsesCuratedLists(t *testing.T) {
	app := createTestApp(t)
	ctx := context.Background()
	app.signIn(t, testSuperadminEmail)

	_, err := app.catalog.UpdateSiteContent(ctx, entity.SiteContentPatch{
		NewArrivalsCarIDs:  &[]int64{6, 99, 5, 4, 3},
		DealOfTheWeekCarID: ptr(int64(99)),
	})
	require.NoError(t, err)

	home, err := app.catalog.Home(ctx)
	require.NoError(t, err)

	assert.Equal(t, []int64{6, 5, 4, 3}, carIDs(home.NewArrivals))
	assert.Nil(t, home.DealOfTheWeek)
}

func TestCatalogService_CarDetailRecordsRecentlyViewed(t *testing.T) {
	app := createTestApp(t)
	ctx := context.Background()
	app.signIn(t, testCustomerEmail)

	car, err := app.catalog.CarDetail(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Porsche", car.Make)

	_, err = app.catalog.CarDetail(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrCarNotFound)

	assert.Equal(t, []int64{3}, app.garage.Snapshot(ctx).RecentlyViewed)
}

func TestCatalogService_Garage(t *testing.T) {
	app := createTestApp(t)
	ctx := context.Background()

	_, err := app.catalog.Garage(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	app.signIn(t, testCustomerEmail)
	_, err = app.garage.ToggleFavorite(ctx, 2)
	require.NoError(t, err)
	_, err = app.garage.ToggleFavorite(ctx, 404)
	require.NoError(t, err)
	_, err = app.garage.ToggleCompare(ctx, 1)
	require.NoError(t, err)

	out, err := app.catalog.Garage(ctx)
	require.NoError(t, err)

	assert.Equal(t, []int64{2}, carIDs(out.Favorites))
	assert.Equal(t, []int64{1}, carIDs(out.CompareItems))
	assert.Empty(t, out.RecentlyViewed)
	assert.Len(t, out.TestDrives, 3)
	assert.Len(t, out.Purchases, 1)
}

func TestCatalogService_UpdateSiteContent(t *testing.T) {
	app := createTestApp(t)
	ctx := context.Background()

	_, err := app.catalog.UpdateSiteContent(ctx, entity.SiteContentPatch{SiteName: ptr("X")})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	app.signIn(t, testDealerEmail)
	_, err = app.catalog.UpdateSiteContent(ctx, entity.SiteContentPatch{SiteName: ptr("X")})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	app.signIn(t, testSuperadminEmail)
	_, err = app.catalog.UpdateSiteContent(ctx, entity.SiteContentPatch{
		InventorySettings: &entity.InventorySettings{SortOptions: []string{"cheapest"}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	updated, err := app.catalog.UpdateSiteContent(ctx, entity.SiteContentPatch{SiteName: ptr("AutoSphere Lagos")})
	require.NoError(t, err)
	assert.Equal(t, "AutoSphere Lagos", updated.SiteName)
	assert.Equal(t, "AutoSphere Lagos", app.catalog.SiteContent(ctx).SiteName)
}
