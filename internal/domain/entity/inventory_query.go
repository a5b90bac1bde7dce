package entity

import "slices"

// SortKey selects the ordering of an inventory query.
type SortKey string

const (
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortYearDesc   SortKey = "year-desc"
	SortMileageAsc SortKey = "mileage-asc"
)

// FilterAll is the filter value that matches every make or condition.
const FilterAll = "all"

// SortKeys lists every supported ordering.
var SortKeys = []SortKey{SortPriceAsc, SortPriceDesc, SortYearDesc, SortMileageAsc}

// IsValid checks if the SortKey is supported.
func (s SortKey) IsValid() bool {
	return slices.Contains(SortKeys, s)
}

// InventoryQuery is the browse filter. Empty fields, and "all" for Make and
// Condition, match everything. An empty Sort means price-asc.
type InventoryQuery struct {
	Search    string  `json:"search" query:"search"`
	Make      string  `json:"make" query:"make"`
	Condition string  `json:"condition" query:"condition"`
	Sort      SortKey `json:"sort" query:"sort"`
}

// EffectiveSort returns the ordering the query asks for, defaulting to price-asc.
func (q InventoryQuery) EffectiveSort() SortKey {
	if q.Sort == "" {
		return SortPriceAsc
	}

	return q.Sort
}
