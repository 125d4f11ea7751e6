package commands

import (
	"context"
	"log/slog"

	"castlecare/internal/core/ports"
)

// UpdatePricingOptionCommandHandler edits existing pricing plans. A single
// plan edit affects every cached listing that could include the plan, so the
// whole pricing cache category is bulk-invalidated after commit.
type UpdatePricingOptionCommandHandler struct {
	uowFactory PricingUoWFactory
	cache      ports.CacheStore
	logger     *slog.Logger
}

// NewUpdatePricingOptionCommandHandler creates a handler for plan edits.
func NewUpdatePricingOptionCommandHandler(
	uowFactory PricingUoWFactory,
	cache ports.CacheStore,
	logger *slog.Logger,
) UpdatePricingOptionCommandHandler {
	return UpdatePricingOptionCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "update_pricing_option"),
	}
}

// Handle processes the plan edit command.
func (h UpdatePricingOptionCommandHandler) Handle(ctx context.Context, cmd UpdatePricingOptionCommand) error {
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

	aggregate, err := uow.PricingRepository().Get(ctx, cmd.PricingOptionID())
	if err != nil {
		return err
	}

	if err = aggregate.Update(cmd.Name(), cmd.Subtitle(), cmd.Price(), cmd.Features(), cmd.SizeRange()); err != nil {
		return err
	}

	if err = uow.PricingRepository().Update(ctx, aggregate); err != nil {
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
