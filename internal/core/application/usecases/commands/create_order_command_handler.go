package commands

import (
	"context"
	"errors"
	"log/slog"

	"castlecare/internal/core/domain/model/order"
	"castlecare/internal/core/domain/services"
	"castlecare/internal/core/ports"
	"castlecare/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves and cross-checks the referenced customer, address, and pricing
// plan, gates the booking on property-size eligibility, and persists the
// order with a price snapshot in a single transaction.
//
// After commit, a lightweight order event is published best-effort: a broker
// failure is logged and swallowed, never failing the creation.
type CreateOrderCommandHandler struct {
	uowFactory   UoWFactory
	propertyData ports.PropertySizeProvider
	validator    services.EligibilityValidator
	publisher    ports.OrderEventPublisher
	logger       *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	propertyData ports.PropertySizeProvider,
	validator services.EligibilityValidator,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		propertyData: propertyData,
		validator:    validator,
		publisher:    publisher,
		logger:       logger.With("component", "create_order"),
	}
}

// Handle processes the order creation command.
//
// Any missing referenced entity is an ObjectNotFoundError; an address owned
// by a different customer or a service-type mismatch with the plan is an
// InvalidArgument error; an eligibility failure aborts with no partial state
// committed. The external property lookup never fails the operation: the
// provider substitutes a configured default size when unavailable.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	customers := uow.CustomerRepository()
	if _, err := customers.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	// Resolve the address globally so a missing address and an address owned
	// by another customer surface as distinct error kinds.
	address, err := customers.GetAddress(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if !address.BelongsTo(cmd.CustomerID()) {
		return errs.NewValueIsInvalidErrorWithCause("addressId",
			errors.New("address does not belong to the customer"))
	}

	plan, err := uow.PricingRepository().Get(ctx, cmd.PricingOptionID())
	if err != nil {
		return err
	}

	size := h.propertyData.Lookup(ctx, address)
	if err = h.validator.Validate(plan, size.LivingAreaSqFt, size.LotSize); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.AddressID(),
		plan, cmd.ServiceType(), cmd.Date(), cmd.TimeSlot(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, newOrder)

	return nil
}

func (h CreateOrderCommandHandler) publish(ctx context.Context, o *order.Order) {
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
