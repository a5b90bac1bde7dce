package impl

import (
	"context"
	"testing"

	"autosphere/internal/domain/entity"
	"autosphere/internal/domain/repository"
	"autosphere/internal/infra/persistence/memory"
	mockRepo "autosphere/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSiteContentService_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	srv := NewSiteContentService(kv, testSeedCatalog(), newDiscardLogger())

	content := srv.Get(ctx)

	assert.Equal(t, "AutoSphere", content.SiteName)
	require.NotNil(t, content.DealOfTheWeekCarID)
	assert.Equal(t, int64(4), *content.DealOfTheWeekCarID)

	_, found, err := kv.Get(ctx, repository.KeySiteContent)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSiteContentService_UpdateReplacesTopLevelFields(t *testing.T) {
	ctx := context.Background()
	srv := NewSiteContentService(memory.NewKVStore(), testSeedCatalog(), newDiscardLogger())

	updated, err := srv.Update(ctx, entity.SiteContentPatch{
		SiteName:          ptr("AutoSphere Abuja"),
		Hero:              &entity.Hero{Title: "New title"},
		NewArrivalsCarIDs: &[]int64{2, 7},
	})
	require.NoError(t, err)

	assert.Equal(t, "AutoSphere Abuja", updated.SiteName)
	assert.Equal(t, entity.Hero{Title: "New title"}, updated.Hero)
	assert.Equal(t, []int64{2, 7}, updated.NewArrivalsCarIDs)
	assert.Equal(t, []string{"all", "New", "Used"}, updated.InventorySettings.ConditionFilters)
	assert.Equal(t, updated.SiteName, srv.Get(ctx).SiteName)
}

func TestSiteContentService_ClearDealOfTheWeek(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	srv := NewSiteContentService(kv, testSeedCatalog(), newDiscardLogger())

	cleared, err := srv.ClearDealOfTheWeek(ctx)
	require.NoError(t, err)
	assert.Nil(t, cleared.DealOfTheWeekCarID)

	reopened := NewSiteContentService(kv, testSeedCatalog(), newDiscardLogger())
	assert.Nil(t, reopened.Get(ctx).DealOfTheWeekCarID)
}

func TestSiteContentService_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	srv := NewSiteContentService(memory.NewKVStore(), testSeedCatalog(), newDiscardLogger())

	content := srv.Get(ctx)
	content.InventorySettings.SortOptions[0] = "mutated"
	*content.DealOfTheWeekCarID = 99

	again := srv.Get(ctx)
	assert.Equal(t, "price-asc", again.InventorySettings.SortOptions[0])
	assert.Equal(t, int64(4), *again.DealOfTheWeekCarID)
}

func TestSiteContentService_UpdateStorageFailure(t *testing.T) {
	ctx := context.Background()
	kv := mockRepo.NewMockKVStore(t)
	kv.EXPECT().Get(ctx, repository.KeySiteContent).Return([]byte(`{"siteName":"Stored"}`), true, nil).Once()
	kv.EXPECT().Set(ctx, repository.KeySiteContent, mock.Anything).Return(errors.New("read-only")).Once()

	srv := NewSiteContentService(kv, testSeedCatalog(), newDiscardLogger())

	_, err := srv.Update(ctx, entity.SiteContentPatch{SiteName: ptr("Changed")})

	require.Error(t, err)
	assert.Equal(t, "Stored", srv.Get(ctx).SiteName)
}
