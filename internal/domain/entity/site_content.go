package entity

import "slices"

// Hero is the landing banner.
type Hero struct {
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Image    string `json:"image" yaml:"image"`
}

// OpeningHours is the showroom schedule.
type OpeningHours struct {
	Week     string `json:"week" yaml:"week"`
	Saturday string `json:"saturday" yaml:"saturday"`
	Sunday   string `json:"sunday" yaml:"sunday"`
}

// ContactInfo is the showroom contact block.
type ContactInfo struct {
	Address string       `json:"address" yaml:"address"`
	Phone   string       `json:"phone" yaml:"phone"`
	Email   string       `json:"email" yaml:"email"`
	Hours   OpeningHours `json:"hours" yaml:"hours"`
}

// SocialHandles links to the dealership's social profiles.
type SocialHandles struct {
	Facebook  string `json:"facebook" yaml:"facebook"`
	Twitter   string `json:"twitter" yaml:"twitter"`
	Instagram string `json:"instagram" yaml:"instagram"`
}

// InventorySettings holds the allow-lists the browse page offers.
type InventorySettings struct {
	SortOptions      []string `json:"sortOptions" yaml:"sortOptions"`
	ConditionFilters []string `json:"conditionFilters" yaml:"conditionFilters"`
}

// AllowsSort reports whether the sort key is offered. An empty key is always allowed.
func (s InventorySettings) AllowsSort(key SortKey) bool {
	return key == "" || slices.Contains(s.SortOptions, string(key))
}

// AllowsCondition reports whether the condition filter is offered.
// Empty and "all" are always allowed.
func (s InventorySettings) AllowsCondition(condition string) bool {
	return condition == "" || condition == FilterAll || slices.Contains(s.ConditionFilters, condition)
}

// SiteContent is the singleton editable storefront content.
type SiteContent struct {
	SiteName           string            `json:"siteName" yaml:"siteName"`
	Hero               Hero              `json:"hero" yaml:"hero"`
	NewArrivalsCarIDs  []int64           `json:"newArrivalsCarIds" yaml:"newArrivalsCarIds"`
	BestDealsCarIDs    []int64           `json:"bestDealsCarIds" yaml:"bestDealsCarIds"`
	TrendingCarsCarIDs []int64           `json:"trendingCarsCarIds" yaml:"trendingCarsCarIds"`
	UsedCarsCarIDs     []int64           `json:"usedCarsCarIds" yaml:"usedCarsCarIds"`
	DealOfTheWeekCarID *int64            `json:"dealOfTheWeekCarId" yaml:"dealOfTheWeekCarId,omitempty"`
	ContactInfo        ContactInfo       `json:"contactInfo" yaml:"contactInfo"`
	SocialHandles      SocialHandles     `json:"socialHandles" yaml:"socialHandles"`
	InventorySettings  InventorySettings `json:"inventorySettings" yaml:"inventorySettings"`
}

// Clone returns a deep copy of the content.
func (s SiteContent) Clone() SiteContent {
	out := s
	out.NewArrivalsCarIDs = cloneIDs(s.NewArrivalsCarIDs)
	out.BestDealsCarIDs = cloneIDs(s.BestDealsCarIDs)
	out.TrendingCarsCarIDs = cloneIDs(s.TrendingCarsCarIDs)
	out.UsedCarsCarIDs = cloneIDs(s.UsedCarsCarIDs)
	if s.DealOfTheWeekCarID != nil {
		id := *s.DealOfTheWeekCarID
		out.DealOfTheWeekCarID = &id
	}
	out.InventorySettings.SortOptions = append([]string(nil), s.InventorySettings.SortOptions...)
	out.InventorySettings.ConditionFilters = append([]string(nil), s.InventorySettings.ConditionFilters...)

	return out
}

// SiteContentPatch merges one level deep: each non-nil field replaces the
// top-level value wholesale, nested structs included.
type SiteContentPatch struct {
	SiteName           *string            `json:"siteName,omitempty"`
	Hero               *Hero              `json:"hero,omitempty"`
	NewArrivalsCarIDs  *[]int64           `json:"newArrivalsCarIds,omitempty"`
	BestDealsCarIDs    *[]int64           `json:"bestDealsCarIds,omitempty"`
	TrendingCarsCarIDs *[]int64           `json:"trendingCarsCarIds,omitempty"`
	UsedCarsCarIDs     *[]int64           `json:"usedCarsCarIds,omitempty"`
	DealOfTheWeekCarID *int64             `json:"dealOfTheWeekCarId,omitempty"`
	ContactInfo        *ContactInfo       `json:"contactInfo,omitempty"`
	SocialHandles      *SocialHandles     `json:"socialHandles,omitempty"`
	InventorySettings  *InventorySettings `json:"inventorySettings,omitempty"`
}

// ApplyTo returns content with the patch merged over it.
func (p SiteContentPatch) ApplyTo(content SiteContent) SiteContent {
	out := content.Clone()
	if p.SiteName != nil {
		out.SiteName = *p.SiteName
	}
	if p.Hero != nil {
		out.Hero = *p.Hero
	}
	if p.NewArrivalsCarIDs != nil {
		out.NewArrivalsCarIDs = cloneIDs(*p.NewArrivalsCarIDs)
	}
	if p.BestDealsCarIDs != nil {
		out.BestDealsCarIDs = cloneIDs(*p.BestDealsCarIDs)
	}
	if p.TrendingCarsCarIDs != nil {
		out.TrendingCarsCarIDs = cloneIDs(*p.TrendingCarsCarIDs)
	}
	if p.UsedCarsCarIDs != nil {
		out.UsedCarsCarIDs = cloneIDs(*p.UsedCarsCarIDs)
	}
	if p.DealOfTheWeekCarID != nil {
		id := *p.DealOfTheWeekCarID
		out.DealOfTheWeekCarID = &id
	}
	if p.ContactInfo != nil {
		out.ContactInfo = *p.ContactInfo
	}
	if p.SocialHandles != nil {
		out.SocialHandles = *p.SocialHandles
	}
	if p.InventorySettings != nil {
		out.InventorySettings = InventorySettings{
			SortOptions:      append([]string(nil), p.InventorySettings.SortOptions...),
			ConditionFilters: append([]string(nil), p.InventorySettings.ConditionFilters...),
		}
	}

	return out
}

func cloneIDs(ids []int64) []int64 {
	if ids == nil {
		return nil
	}

	return append([]int64(nil), ids...)
}
