package commands

import (
	"errors"
	"time"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDateIsRequired     = errors.New("date is required")
	ErrTimeSlotIsRequired = errors.New("time slot is required")
)

// CreateOrderCommand represents a request to book a new service order.
// Encapsulates the customer, service address, chosen pricing plan, and the
// requested visit slot.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, addressID, planID,
//	    pricing.Lawncare, date, "09:00-11:00")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	addressID       kernel.UUID
	pricingOptionID kernel.UUID
	serviceType     pricing.ServiceType
	date            time.Time
	timeSlot        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to book a new service order.
// Validates that all referenced ids are valid, the service type is one of the
// supported types, and the visit date and time slot are set.
func NewCreateOrderCommand(
	orderID, customerID, addressID, pricingOptionID kernel.UUID,
	serviceType pricing.ServiceType,
	date time.Time,
	timeSlot string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setAddressID(addressID),
		orderCommand.setPricingOptionID(pricingOptionID),
		orderCommand.setServiceType(serviceType),
		orderCommand.setDate(date),
		orderCommand.setTimeSlot(timeSlot),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the booking customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AddressID returns the identifier of the service address.
func (c CreateOrderCommand) AddressID() kernel.UUID {
	return c.addressID
}

// PricingOptionID returns the identifier of the chosen pricing plan.
func (c CreateOrderCommand) PricingOptionID() kernel.UUID {
	return c.pricingOptionID
}

// ServiceType returns the requested service type.
func (c CreateOrderCommand) ServiceType() pricing.ServiceType {
	return c.serviceType
}

// Date returns the requested visit date.
func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

// TimeSlot returns the requested visit time slot.
func (c CreateOrderCommand) TimeSlot() string {
	return c.timeSlot
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setPricingOptionID(pricingOptionID kernel.UUID) error {
	if err := pricingOptionID.Validate(); err != nil {
		return err
	}

	c.pricingOptionID = pricingOptionID
	return nil
}

func (c *CreateOrderCommand) setServiceType(serviceType pricing.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	c.date = date
	return nil
}

func (c *CreateOrderCommand) setTimeSlot(timeSlot string) error {
	if timeSlot == "" {
		return ErrTimeSlotIsRequired
	}

	c.timeSlot = timeSlot
	return nil
}
