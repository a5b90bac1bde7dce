package usecase

import (
	"context"

	"autosphere/internal/domain/entity"
)

// --- Output DTOs ---

// BrowseOutput is the inventory page: the matching cars plus the filter options on offer.
type BrowseOutput struct {
	Cars             []entity.Car `json:"cars"`
	Makes            []string     `json:"makes"`
	SortOptions      []string     `json:"sortOptions"`
	ConditionFilters []string     `json:"conditionFilters"`
}

// HomeOutput is the landing page.
type HomeOutput struct {
	SiteName      string       `json:"siteName"`
	Hero          entity.Hero  `json:"hero"`
	NewArrivals   []entity.Car `json:"newArrivals"`
	BestDeals     []entity.Car `json:"bestDeals"`
	Trending      []entity.Car `json:"trending"`
	UsedCars      []entity.Car `json:"usedCars"`
	DealOfTheWeek *entity.Car  `json:"dealOfTheWeek"`
}

// GarageOutput is the profile garage with every id resolved to its car.
type GarageOutput struct {
	Favorites      []entity.Car       `json:"favorites"`
	RecentlyViewed []entity.Car       `json:"recentlyViewed"`
	CompareItems   []entity.Car       `json:"compareItems"`
	TestDrives     []entity.TestDrive `json:"testDrives"`
	Purchases      []entity.Purchase  `json:"purchases"`
}

// CatalogUsecase covers the public storefront pages.
type CatalogUsecase interface {
	Browse(ctx context.Context, query entity.InventoryQuery) (*BrowseOutput, error)
	Home(ctx context.Context) (*HomeOutput, error)
	// CarDetail returns a car and records it as recently viewed.
	CarDetail(ctx context.Context, id int64) (*entity.Car, error)
	Garage(ctx context.Context) (*GarageOutput, error)
	SiteContent(ctx context.Context) entity.SiteContent
	UpdateSiteContent(ctx context.Context, patch entity.SiteContentPatch) (*entity.SiteContent, error)
}
