package commands

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdatePricingOptionCommandIsNotConstructed = errors.New(
	"UpdatePricingOptionCommand must be created via NewUpdatePricingOptionCommand constructor",
)

// UpdatePricingOptionCommand represents a request to edit an existing pricing
// plan. The plan's service type and billing period are fixed at creation;
// edits never affect the price snapshots of orders already placed.
type UpdatePricingOptionCommand struct { //nolint:recvcheck //using for validation
	pricingOptionID kernel.UUID
	name            string
	subtitle        string
	price           decimal.Decimal
	features        []string
	sizeRange       string

	guard guard.ConstructorGuard
}

// NewUpdatePricingOptionCommand creates a command to edit a pricing plan.
func NewUpdatePricingOptionCommand(
	pricingOptionID kernel.UUID,
	name, subtitle string,
	price decimal.Decimal,
	features []string,
	sizeRange string,
) (UpdatePricingOptionCommand, error) {
	pricingCommand := UpdatePricingOptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := pricingCommand.setPricingOptionID(pricingOptionID); err != nil {
		return UpdatePricingOptionCommand{}, err
	}

	pricingCommand.name = name
	pricingCommand.subtitle = subtitle
	pricingCommand.price = price
	pricingCommand.features = features
	pricingCommand.sizeRange = sizeRange

	return pricingCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePricingOptionCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePricingOptionCommandIsNotConstructed)
}

// PricingOptionID returns the identifier of the plan to edit.
func (c UpdatePricingOptionCommand) PricingOptionID() kernel.UUID {
	return c.pricingOptionID
}

// Name returns the new display name.
func (c UpdatePricingOptionCommand) Name() string {
	return c.name
}

// Subtitle returns the new display subtitle.
func (c UpdatePricingOptionCommand) Subtitle() string {
	return c.subtitle
}

// Price returns the new price.
func (c UpdatePricingOptionCommand) Price() decimal.Decimal {
	return c.price
}

// Features returns the new ordered feature list.
func (c UpdatePricingOptionCommand) Features() []string {
	return c.features
}

// SizeRange returns the new size-range descriptor.
func (c UpdatePricingOptionCommand) SizeRange() string {
	return c.sizeRange
}

func (c *UpdatePricingOptionCommand) setPricingOptionID(pricingOptionID kernel.UUID) error {
	if err := pricingOptionID.Validate(); err != nil {
		return err
	}

	c.pricingOptionID = pricingOptionID
	return nil
}
