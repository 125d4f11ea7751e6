package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"castlecare/internal/core/ports"
)

// CachedPricingOptionsHandler is a read-through caching decorator around
// PricingOptionsHandler. Plan edits bulk-invalidate the whole pricing
// category, so every listing key is fresh after any committed plan write.
type CachedPricingOptionsHandler struct {
	inner  PricingOptionsHandler
	cache  ports.CacheStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedPricingOptionsHandler wraps a plan listing handler with caching.
func NewCachedPricingOptionsHandler(
	inner PricingOptionsHandler,
	cache ports.CacheStore,
	ttl time.Duration,
	logger *slog.Logger,
) CachedPricingOptionsHandler {
	return CachedPricingOptionsHandler{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "pricing_cache"),
	}
}

// Handle serves the listing read-through.
func (h CachedPricingOptionsHandler) Handle(
	ctx context.Context,
	query GetPricingOptionsQuery,
) ([]PricingOptionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	key := ports.PricingListCacheKey(string(query.ServiceType()), query.CacheKeySuffix())

	payload, found, err := h.cache.Get(ctx, key)
	if err != nil {
		h.logger.Error("cache read failed", "key", key, "error", err)
	} else if found {
		var plans []PricingOptionResponse
		if err = json.Unmarshal(payload, &plans); err == nil {
			return plans, nil
		}
		h.logger.Error("cached payload is corrupt", "key", key, "error", err)
	}

	plans, err := h.inner.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	if payload, err = json.Marshal(plans); err == nil {
		if err = h.cache.Set(ctx, key, payload, h.ttl); err != nil {
			h.logger.Error("cache write failed", "key", key, "error", err)
		}
	}

	return plans, nil
}
