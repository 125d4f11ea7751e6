package commands

import (
	"context"
	"log/slog"

	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/core/ports"
)

// CreatePricingOptionCommandHandler publishes new pricing plans. The pricing
// listing caches for the plan's service type are bulk-invalidated after
// commit so listings pick up the new plan immediately.
type CreatePricingOptionCommandHandler struct {
	uowFactory PricingUoWFactory
	cache      ports.CacheStore
	logger     *slog.Logger
}

// NewCreatePricingOptionCommandHandler creates a handler for plan publication.
func NewCreatePricingOptionCommandHandler(
	uowFactory PricingUoWFactory,
	cache ports.CacheStore,
	logger *slog.Logger,
) CreatePricingOptionCommandHandler {
	return CreatePricingOptionCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "create_pricing_option"),
	}
}

// Handle processes the plan publication command.
func (h CreatePricingOptionCommandHandler) Handle(ctx context.Context, cmd CreatePricingOptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := pricing.NewPricingOption(
		cmd.PricingOptionID(), cmd.ServiceType(), cmd.Name(), cmd.Subtitle(),
		cmd.Price(), cmd.BillingPeriod(), cmd.Features(), cmd.SizeRange(),
	)
	if err != nil {
		return err
	}

	if err = uow.PricingRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.cache.InvalidateCategory(ctx, ports.CacheCategoryPricing); err != nil {
		h.logger.Error("failed to invalidate pricing caches", "error", err)
	}

	return nil
}
