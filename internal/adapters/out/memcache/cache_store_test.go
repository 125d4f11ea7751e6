package memcache_test

import (
	"context"
	"testing"
	"time"

	"castlecare/internal/adapters/out/memcache"
	"castlecare/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStore_SetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memcache.NewCacheStore()

	require.NoError(t, store.Set(ctx, "orders:abc", []byte(`{"id":1}`), time.Minute))

	value, found, err := store.Get(ctx, "orders:abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"id":1}`), value)
}

func TestCacheStore_MissingKey(t *testing.T) {
	store := memcache.NewCacheStore()

	_, found, err := store.Get(context.Background(), "orders:missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheStore_ExpiredEntryIsAMiss(t *testing.T) {
	ctx := context.Background()
	store := memcache.NewCacheStore()

	require.NoError(t, store.Set(ctx, "orders:abc", []byte("x"), -time.Second))

	_, found, err := store.Get(ctx, "orders:abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheStore_Invalidate(t *testing.T) {
	ctx := context.Background()
	store := memcache.NewCacheStore()

	require.NoError(t, store.Set(ctx, "orders:abc", []byte("x"), time.Minute))
	require.NoError(t, store.Invalidate(ctx, "orders:abc"))
	require.NoError(t, store.Invalidate(ctx, "orders:absent"))

	_, found, err := store.Get(ctx, "orders:abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheStore_InvalidateCategory(t *testing.T) {
	ctx := context.Background()
	store := memcache.NewCacheStore()

	require.NoError(t, store.Set(ctx, ports.PricingListCacheKey("LAWNCARE", ""), []byte("a"), time.Minute))
	require.NoError(t, store.Set(ctx, ports.PricingListCacheKey("LIGHTING", "ONE_TIME"), []byte("b"), time.Minute))
	require.NoError(t, store.Set(ctx, "orders:abc", []byte("c"), time.Minute))

	require.NoError(t, store.InvalidateCategory(ctx, ports.CacheCategoryPricing))

	_, found, err := store.Get(ctx, ports.PricingListCacheKey("LAWNCARE", ""))
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = store.Get(ctx, ports.PricingListCacheKey("LIGHTING", "ONE_TIME"))
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = store.Get(ctx, "orders:abc")
	require.NoError(t, err)
	assert.True(t, found, "other categories must survive")
}
