// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// Storage keys shared by the stores.
const (
	KeySession        = "user"
	KeyInventory      = "cars_inventory"
	KeyCarIDSequence  = "cars_id_seq"
	KeyCarIDHighWater = "cars_id_hwm"
	KeyDirectory      = "registered_users"
	KeySiteContent    = "site_content"
	KeyTestDrives     = "test_drives"
	KeyPurchases      = "purchases"
	keyFavorites      = "favorites_"
	keyRecentlyViewed = "recentlyViewed_"
	keyCompareItems   = "compareItems_"
)

// FavoritesKey returns the storage key of a garage owner's favorites.
func FavoritesKey(owner string) string { return keyFavorites + owner }

// RecentlyViewedKey returns the storage key of a garage owner's recently viewed list.
func RecentlyViewedKey(owner string) string { return keyRecentlyViewed + owner }

// CompareItemsKey returns the storage key of a garage owner's compare set.
func CompareItemsKey(owner string) string { return keyCompareItems + owner }

// KVStore is a durable string-keyed map of serialized JSON values.
// Implementations must be safe for concurrent use.
type KVStore interface {
	// Get returns the value stored under key. found is false when the key is absent;
	// err is reserved for backend failures.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set creates or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}
