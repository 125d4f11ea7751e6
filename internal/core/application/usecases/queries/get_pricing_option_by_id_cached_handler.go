package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"castlecare/internal/core/ports"
)

// CachedPricingOptionByIDHandler is a read-through caching decorator around
// PricingOptionByIDHandler. Single-plan keys live in the pricing category, so
// the bulk invalidation on plan writes covers them too.
type CachedPricingOptionByIDHandler struct {
	inner  PricingOptionByIDHandler
	cache  ports.CacheStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedPricingOptionByIDHandler wraps a single-plan handler with caching.
func NewCachedPricingOptionByIDHandler(
	inner PricingOptionByIDHandler,
	cache ports.CacheStore,
	ttl time.Duration,
	logger *slog.Logger,
) CachedPricingOptionByIDHandler {
	return CachedPricingOptionByIDHandler{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "pricing_cache"),
	}
}

// Handle serves the lookup read-through.
func (h CachedPricingOptionByIDHandler) Handle(
	ctx context.Context,
	query GetPricingOptionByIDQuery,
) (PricingOptionResponse, error) {
	if err := query.Validate(); err != nil {
		return PricingOptionResponse{}, err
	}

	key := ports.PricingOptionCacheKey(query.PricingOptionID())

	payload, found, err := h.cache.Get(ctx, key)
	if err != nil {
		h.logger.Error("cache read failed", "key", key, "error", err)
	} else if found {
		var plan PricingOptionResponse
		if err = json.Unmarshal(payload, &plan); err == nil {
			return plan, nil
		}
		h.logger.Error("cached payload is corrupt", "key", key, "error", err)
	}

	plan, err := h.inner.Handle(ctx, query)
	if err != nil {
		return PricingOptionResponse{}, err
	}

	if payload, err = json.Marshal(plan); err == nil {
		if err = h.cache.Set(ctx, key, payload, h.ttl); err != nil {
			h.logger.Error("cache write failed", "key", key, "error", err)
		}
	}

	return plan, nil
}
