// Package memcache implements the cache store as an in-process map. It is the
// fallback backend for local development and tests where no Redis is running.
package memcache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// CacheStore implements ports.CacheStore with a mutex-guarded map.
// Expired entries are dropped lazily on read.
type CacheStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewCacheStore creates an empty in-process cache store.
func NewCacheStore() *CacheStore {
	return &CacheStore{entries: make(map[string]entry)}
}

// Get retrieves the cached payload for key.
func (s *CacheStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if e.expired(time.Now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set stores the payload under key with the given time-to-live.
// A non-positive ttl stores the entry without expiry.
func (s *CacheStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
	return nil
}

// Invalidate removes a single cache entry.
func (s *CacheStore) Invalidate(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

// InvalidateCategory removes every entry whose key starts with prefix.
func (s *CacheStore) InvalidateCategory(_ context.Context, prefix string) error {
	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
	return nil
}
