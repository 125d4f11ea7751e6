package commands

import (
	"context"
	"log/slog"

	"castlecare/internal/core/domain/model/order"
	"castlecare/internal/core/domain/model/worker"
	"castlecare/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
//
// A transition to ACCEPTED with a worker id resolves the worker and enforces
// the assignment preconditions (approved, available, holds the role); without
// a worker id the order is accepted unassigned. Other targets transition
// directly, gated by the state machine.
//
// Concurrency: the repository update applies only when the order's version is
// unchanged since load; a lost race surfaces as a VersionIsInvalidError and
// nothing is committed.
//
// The single-order cache entry is invalidated synchronously after commit,
// before the handler returns, so an immediately following read sees the new
// status.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderWorkerUoWFactory
	cache      ports.CacheStore
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderWorkerUoWFactory,
	cache ports.CacheStore,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		publisher:  publisher,
		logger:     logger.With("component", "update_order_status"),
	}
}

// Handle processes the status transition command.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if cmd.Status() == order.StatusAccepted {
		var assignee *worker.Worker
		if cmd.WorkerID() != nil {
			assignee, err = uow.WorkerRepository().Get(ctx, *cmd.WorkerID())
			if err != nil {
				return err
			}
		}
		if err = aggregate.Accept(assignee); err != nil {
			return err
		}
	} else {
		if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.invalidate(ctx, aggregate)
	h.publish(ctx, aggregate)

	return nil
}

func (h UpdateOrderStatusCommandHandler) invalidate(ctx context.Context, o *order.Order) {
	if err := h.cache.Invalidate(ctx, ports.OrderCacheKey(o.ID())); err != nil {
		h.logger.Error("failed to invalidate order cache", "orderId", o.ID().String(), "error", err)
	}
}

func (h UpdateOrderStatusCommandHandler) publish(ctx context.Context, o *order.Order) {
	event := ports.OrderEvent{
		OrderID:     o.ID().String(),
		CustomerID:  o.CustomerID().String(),
		ServiceType: string(o.ServiceType()),
		Status:      string(o.Status()),
	}
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Error("failed to publish order event", "orderId", event.OrderID, "error", err)
	}
}
