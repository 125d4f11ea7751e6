package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"castlecare/internal/core/ports"
)

// CachedOrderByIDHandler is a read-through caching decorator around
// OrderByIDHandler. Hits serve from the cache store; misses fall through to
// the inner handler and populate the cache with a short backstop TTL.
//
// Freshness comes from the write paths, which invalidate the single-order key
// synchronously after every committed mutation. Cache store failures degrade
// to the inner handler, never to an error.
type CachedOrderByIDHandler struct {
	inner  OrderByIDHandler
	cache  ports.CacheStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedOrderByIDHandler wraps a single-order handler with caching.
func NewCachedOrderByIDHandler(
	inner OrderByIDHandler,
	cache ports.CacheStore,
	ttl time.Duration,
	logger *slog.Logger,
) CachedOrderByIDHandler {
	return CachedOrderByIDHandler{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "order_cache"),
	}
}

// Handle serves the lookup read-through.
func (h CachedOrderByIDHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	key := ports.OrderCacheKey(query.OrderID())

	payload, found, err := h.cache.Get(ctx, key)
	if err != nil {
		h.logger.Error("cache read failed", "key", key, "error", err)
	} else if found {
		var resp OrderResponse
		if err = json.Unmarshal(payload, &resp); err == nil {
			return resp, nil
		}
		h.logger.Error("cached payload is corrupt", "key", key, "error", err)
	}

	resp, err := h.inner.Handle(ctx, query)
	if err != nil {
		return OrderResponse{}, err
	}

	if payload, err = json.Marshal(resp); err == nil {
		if err = h.cache.Set(ctx, key, payload, h.ttl); err != nil {
			h.logger.Error("cache write failed", "key", key, "error", err)
		}
	}

	return resp, nil
}
