package commands

import (
	"context"
	"log/slog"
	"time"

	"castlecare/internal/core/ports"
)

// EscalatePendingOrdersCommandHandler re-publishes events for orders that have
// sat in PENDING longer than the configured age, so downstream notification
// picks them up again. The sweep itself never mutates orders.
type EscalatePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	staleAge   time.Duration
	logger     *slog.Logger
}

// NewEscalatePendingOrdersCommandHandler creates a handler for the escalation sweep.
func NewEscalatePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	staleAge time.Duration,
	logger *slog.Logger,
) EscalatePendingOrdersCommandHandler {
	return EscalatePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		staleAge:   staleAge,
		logger:     logger.With("component", "escalate_pending_orders"),
	}
}

// Handle processes the escalation sweep command.
func (h EscalatePendingOrdersCommandHandler) Handle(ctx context.Context, cmd EscalatePendingOrdersCommand) error {
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

	cutoff := time.Now().UTC().Add(-h.staleAge)
	stale, err := uow.OrderRepository().GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, o := range stale {
		event := ports.OrderEvent{
			OrderID:     o.ID().String(),
			CustomerID:  o.CustomerID().String(),
			ServiceType: string(o.ServiceType()),
			Status:      string(o.Status()),
		}
		if err = h.publisher.Publish(ctx, event); err != nil {
			h.logger.Error("failed to publish escalation event", "orderId", event.OrderID, "error", err)
		}
	}

	if len(stale) > 0 {
		h.logger.Info("escalated stale pending orders", "count", len(stale))
	}

	return nil
}
