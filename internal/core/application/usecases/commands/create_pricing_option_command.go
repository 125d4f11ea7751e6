package commands

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePricingOptionCommandIsNotConstructed = errors.New(
	"CreatePricingOptionCommand must be created via NewCreatePricingOptionCommand constructor",
)

// CreatePricingOptionCommand represents a request to publish a new pricing
// plan for a service type.
type CreatePricingOptionCommand struct { //nolint:recvcheck //using for validation
	pricingOptionID kernel.UUID
	serviceType     pricing.ServiceType
	name            string
	subtitle        string
	price           decimal.Decimal
	billingPeriod   pricing.BillingPeriod
	features        []string
	sizeRange       string

	guard guard.ConstructorGuard
}

// NewCreatePricingOptionCommand creates a command to publish a pricing plan.
// Price, name, and size-range invariants are enforced by the aggregate.
func NewCreatePricingOptionCommand(
	pricingOptionID kernel.UUID,
	serviceType pricing.ServiceType,
	name, subtitle string,
	price decimal.Decimal,
	billingPeriod pricing.BillingPeriod,
	features []string,
	sizeRange string,
) (CreatePricingOptionCommand, error) {
	pricingCommand := CreatePricingOptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pricingCommand.setPricingOptionID(pricingOptionID),
		pricingCommand.setServiceType(serviceType),
		pricingCommand.setBillingPeriod(billingPeriod),
	); err != nil {
		return CreatePricingOptionCommand{}, err
	}

	pricingCommand.name = name
	pricingCommand.subtitle = subtitle
	pricingCommand.price = price
	pricingCommand.features = features
	pricingCommand.sizeRange = sizeRange

	return pricingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePricingOptionCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingOptionCommandIsNotConstructed)
}

// PricingOptionID returns the identifier for the new plan.
func (c CreatePricingOptionCommand) PricingOptionID() kernel.UUID {
	return c.pricingOptionID
}

// ServiceType returns the plan's service type.
func (c CreatePricingOptionCommand) ServiceType() pricing.ServiceType {
	return c.serviceType
}

// Name returns the plan's display name.
func (c CreatePricingOptionCommand) Name() string {
	return c.name
}

// Subtitle returns the plan's display subtitle.
func (c CreatePricingOptionCommand) Subtitle() string {
	return c.subtitle
}

// Price returns the plan's price.
func (c CreatePricingOptionCommand) Price() decimal.Decimal {
	return c.price
}

// BillingPeriod returns the plan's billing period.
func (c CreatePricingOptionCommand) BillingPeriod() pricing.BillingPeriod {
	return c.billingPeriod
}

// Features returns the plan's ordered feature list.
func (c CreatePricingOptionCommand) Features() []string {
	return c.features
}

// SizeRange returns the plan's size-range descriptor.
func (c CreatePricingOptionCommand) SizeRange() string {
	return c.sizeRange
}

func (c *CreatePricingOptionCommand) setPricingOptionID(pricingOptionID kernel.UUID) error {
	if err := pricingOptionID.Validate(); err != nil {
		return err
	}

	c.pricingOptionID = pricingOptionID
	return nil
}

func (c *CreatePricingOptionCommand) setServiceType(serviceType pricing.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreatePricingOptionCommand) setBillingPeriod(billingPeriod pricing.BillingPeriod) error {
	if err := billingPeriod.Validate(); err != nil {
		return err
	}

	c.billingPeriod = billingPeriod
	return nil
}
