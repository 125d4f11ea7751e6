// Package redis implements the cache store on a Redis backend.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// invalidateScanCount bounds how many keys a single SCAN iteration inspects
// during category invalidation.
const invalidateScanCount = 256

// CacheStore implements ports.CacheStore backed by a Redis client.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a cache store on the given Redis client.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Get retrieves the cached payload for key. A missing key is reported through
// the boolean, not as an error.
func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set stores the payload under key with the given time-to-live.
func (s *CacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Invalidate removes a single cache entry. Removing an absent key is not an error.
func (s *CacheStore) Invalidate(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// InvalidateCategory removes every entry whose key starts with prefix using
// cursor-based SCAN, so it never blocks Redis the way KEYS would.
func (s *CacheStore) InvalidateCategory(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, prefix+"*", invalidateScanCount).Result()
		if err != nil {
			return err
		}

		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
