package ports

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// CacheStore defines the contract for the read-through cache backing the hot
// query paths. Values are opaque byte payloads; callers own serialization.
//
// Correctness comes from explicit invalidation co-located with each committed
// write, not from expiry. TTLs are a backstop against missed invalidations.
type CacheStore interface {
	// Get retrieves the cached payload for key. The second return value
	// reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the payload under key with the given time-to-live.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Invalidate removes a single cache entry. Removing an absent key is not
	// an error.
	Invalidate(ctx context.Context, key string) error

	// InvalidateCategory removes every entry whose key starts with prefix.
	// Used for listing caches where a single write affects many entries.
	InvalidateCategory(ctx context.Context, prefix string) error
}

// Cache key prefixes, one per entity category. InvalidateCategory operates on
// these prefixes, so every key builder below must start with its category.
const (
	CacheCategoryOrders   = "orders:"
	CacheCategoryCustomer = "customers:"
	CacheCategoryWorker   = "workers:"
	CacheCategoryPricing  = "pricing:"
	CacheCategoryProperty = "property:"
)

// OrderCacheKey builds the cache key for a single order lookup.
func OrderCacheKey(id fmt.Stringer) string {
	return CacheCategoryOrders + id.String()
}

// CustomerCacheKey builds the cache key for a single customer lookup.
func CustomerCacheKey(id fmt.Stringer) string {
	return CacheCategoryCustomer + id.String()
}

// WorkerCacheKey builds the cache key for a single worker lookup.
func WorkerCacheKey(id fmt.Stringer) string {
	return CacheCategoryWorker + id.String()
}

// PricingOptionCacheKey builds the cache key for a single plan lookup. It
// shares the pricing category so plan writes sweep it along with listings.
func PricingOptionCacheKey(id fmt.Stringer) string {
	return CacheCategoryPricing + "id:" + id.String()
}

// PricingListCacheKey builds the cache key for a plan listing by service type.
// Pass an empty billingPeriod for the unfiltered listing.
func PricingListCacheKey(serviceType, billingPeriod string) string {
	if billingPeriod == "" {
		return CacheCategoryPricing + serviceType
	}
	return CacheCategoryPricing + serviceType + ":" + billingPeriod
}

// PropertyCacheKey builds the cache key for a property-size lookup from the
// full normalized address tuple.
func PropertyCacheKey(street, city, state, zip string) string {
	parts := []string{street, city, state, zip}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return CacheCategoryProperty + strings.Join(parts, "|")
}
