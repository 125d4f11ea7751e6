package commands

import (
	"context"
	"log/slog"

	"castlecare/internal/core/ports"
)

// SetWorkerAvailabilityCommandHandler toggles a worker's availability.
// Fails with IllegalState when the worker has not been approved.
// The worker cache entry is invalidated after commit.
type SetWorkerAvailabilityCommandHandler struct {
	uowFactory WorkerUoWFactory
	cache      ports.CacheStore
	logger     *slog.Logger
}

// NewSetWorkerAvailabilityCommandHandler creates a handler for availability changes.
func NewSetWorkerAvailabilityCommandHandler(
	uowFactory WorkerUoWFactory,
	cache ports.CacheStore,
	logger *slog.Logger,
) SetWorkerAvailabilityCommandHandler {
	return SetWorkerAvailabilityCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "set_worker_availability"),
	}
}

// Handle processes the availability command.
func (h SetWorkerAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetWorkerAvailabilityCommand) error {
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

	aggregate, err := uow.WorkerRepository().Get(ctx, cmd.WorkerID())
	if err != nil {
		return err
	}

	if err = aggregate.SetAvailability(cmd.Available()); err != nil {
		return err
	}

	if err = uow.WorkerRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.cache.Invalidate(ctx, ports.WorkerCacheKey(aggregate.ID())); err != nil {
		h.logger.Error("failed to invalidate worker cache", "workerId", aggregate.ID().String(), "error", err)
	}

	return nil
}
