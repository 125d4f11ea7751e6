package commands

import (
	"context"
	"log/slog"

	"castlecare/internal/core/ports"
)

// AddProofCommandHandler attaches proof-of-completion media to an order.
// The order must currently be IN_PROGRESS; any other status fails with an
// IllegalStateError. The single-order cache entry is invalidated after commit.
type AddProofCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.CacheStore
	logger     *slog.Logger
}

// NewAddProofCommandHandler creates a handler for proof attachment operations.
func NewAddProofCommandHandler(
	uowFactory OrderUoWFactory,
	cache ports.CacheStore,
	logger *slog.Logger,
) AddProofCommandHandler {
	return AddProofCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "add_proof"),
	}
}

// Handle processes the proof attachment command.
func (h AddProofCommandHandler) Handle(ctx context.Context, cmd AddProofCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddProof(cmd.ProofRef()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.cache.Invalidate(ctx, ports.OrderCacheKey(aggregate.ID())); err != nil {
		h.logger.Error("failed to invalidate order cache", "orderId", aggregate.ID().String(), "error", err)
	}

	return nil
}
