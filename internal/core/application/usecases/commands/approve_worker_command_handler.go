package commands

import (
	"context"
	"log/slog"

	"castlecare/internal/core/ports"
)

// ApproveWorkerCommandHandler moves a worker from PENDING to APPROVED.
// Approval is idempotent. The worker cache entry is invalidated after commit.
type ApproveWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
	cache      ports.CacheStore
	logger     *slog.Logger
}

// NewApproveWorkerCommandHandler creates a handler for worker approval.
func NewApproveWorkerCommandHandler(
	uowFactory WorkerUoWFactory,
	cache ports.CacheStore,
	logger *slog.Logger,
) ApproveWorkerCommandHandler {
	return ApproveWorkerCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "approve_worker"),
	}
}

// Handle processes the worker approval command.
func (h ApproveWorkerCommandHandler) Handle(ctx context.Context, cmd ApproveWorkerCommand) error {
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

	aggregate.Approve()

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
