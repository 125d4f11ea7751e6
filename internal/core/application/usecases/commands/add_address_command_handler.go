package commands

import (
	"context"
	"log/slog"

	"castlecare/internal/core/domain/model/customer"
	"castlecare/internal/core/ports"
)

// AddAddressCommandHandler attaches a new service address to a customer.
// The customer cache entry is invalidated after commit.
type AddAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
	cache      ports.CacheStore
	logger     *slog.Logger
}

// NewAddAddressCommandHandler creates a handler for address attachment.
func NewAddAddressCommandHandler(
	uowFactory CustomerUoWFactory,
	cache ports.CacheStore,
	logger *slog.Logger,
) AddAddressCommandHandler {
	return AddAddressCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "add_address"),
	}
}

// Handle processes the address attachment command.
func (h AddAddressCommandHandler) Handle(ctx context.Context, cmd AddAddressCommand) error {
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

	data := cmd.Address()
	address, err := customer.NewAddress(
		cmd.AddressID(), cmd.CustomerID(),
		data.Street, data.City, data.State, data.Zip,
	)
	if err != nil {
		return err
	}

	if err = aggregate.AddAddress(address); err != nil {
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
