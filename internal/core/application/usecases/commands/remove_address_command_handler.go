package commands

import (
	"context"
	"log/slog"

	"castlecare/internal/core/ports"
)

// RemoveAddressCommandHandler detaches an address from its owning customer.
// Detaching an address the customer does not own is an ObjectNotFoundError.
// The customer cache entry is invalidated after commit.
type RemoveAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
	cache      ports.CacheStore
	logger     *slog.Logger
}

// NewRemoveAddressCommandHandler creates a handler for address removal.
func NewRemoveAddressCommandHandler(
	uowFactory CustomerUoWFactory,
	cache ports.CacheStore,
	logger *slog.Logger,
) RemoveAddressCommandHandler {
	return RemoveAddressCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "remove_address"),
	}
}

// Handle processes the address removal command.
func (h RemoveAddressCommandHandler) Handle(ctx context.Context, cmd RemoveAddressCommand) error {
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

	aggregate, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveAddress(cmd.AddressID()); err != nil {
		return err
	}

	if err = uow.CustomerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.cache.Invalidate(ctx, ports.CustomerCacheKey(aggregate.ID())); err != nil {
		h.logger.Error("failed to invalidate customer cache", "customerId", aggregate.ID().String(), "error", err)
	}

	return nil
}
