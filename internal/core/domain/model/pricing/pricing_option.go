package pricing

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPricingOptionIsNotConstructed is returned when a PricingOption instance
// was not created through NewPricingOption or RestorePricingOption.
var ErrPricingOptionIsNotConstructed = errors.New("PricingOption must be created via NewPricingOption constructor")

// PricingOption is the plan aggregate: a priced service offering with an
// eligibility size bracket.
//
// Invariants:
//   - service type and billing period are valid enums
//   - price is a non-negative decimal
//   - name and size range are non-empty
//
// The size range is free text whose recognized literals depend on the service
// type (see size_range.go); unrecognized values are allowed and simply do not
// gate orders.
type PricingOption struct {
	id            kernel.UUID
	serviceType   ServiceType
	name          string
	subtitle      string
	price         decimal.Decimal
	billingPeriod BillingPeriod
	features      []string
	sizeRange     string

	isConstructed bool
}

// NewPricingOption creates a validated plan.
func NewPricingOption(
	id kernel.UUID,
	serviceType ServiceType,
	name string,
	subtitle string,
	price decimal.Decimal,
	billingPeriod BillingPeriod,
	features []string,
	sizeRange string,
) (*PricingOption, error) {
	option := &PricingOption{
		subtitle:      subtitle,
		features:      append([]string(nil), features...),
		isConstructed: true,
	}

	if err := errors.Join(
		option.setID(id),
		option.setServiceType(serviceType),
		option.setName(name),
		option.setPrice(price),
		option.setBillingPeriod(billingPeriod),
		option.setSizeRange(sizeRange),
	); err != nil {
		return nil, err
	}

	return option, nil
}

// RestorePricingOption reconstructs a plan from persistence without re-running
// creation-time validation beyond the construction invariants.
func RestorePricingOption(
	id kernel.UUID,
	serviceType ServiceType,
	name string,
	subtitle string,
	price decimal.Decimal,
	billingPeriod BillingPeriod,
	features []string,
	sizeRange string,
) (*PricingOption, error) {
	return NewPricingOption(id, serviceType, name, subtitle, price, billingPeriod, features, sizeRange)
}

// Validate ensures the plan was created through a constructor.
func (p *PricingOption) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPricingOptionIsNotConstructed
	}
	return nil
}

func (p *PricingOption) ID() kernel.UUID {
	return p.id
}

func (p *PricingOption) ServiceType() ServiceType {
	return p.serviceType
}

func (p *PricingOption) Name() string {
	return p.name
}

func (p *PricingOption) Subtitle() string {
	return p.subtitle
}

// Price returns the plan's price. Orders copy this value at creation time.
func (p *PricingOption) Price() decimal.Decimal {
	return p.price
}

func (p *PricingOption) BillingPeriod() BillingPeriod {
	return p.billingPeriod
}

// Features returns a copy of the ordered feature list.
func (p *PricingOption) Features() []string {
	return append([]string(nil), p.features...)
}

func (p *PricingOption) SizeRange() string {
	return p.sizeRange
}

// Update edits the plan's presentational and pricing fields. Service type and
// billing period are fixed for the plan's lifetime; existing orders keep their
// snapshot regardless.
func (p *PricingOption) Update(name, subtitle string, price decimal.Decimal, features []string, sizeRange string) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setSizeRange(sizeRange),
	); err != nil {
		return err
	}

	p.subtitle = subtitle
	p.features = append([]string(nil), features...)
	return nil
}

func (p *PricingOption) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PricingOption) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	p.serviceType = serviceType
	return nil
}

func (p *PricingOption) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *PricingOption) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("price must not be negative"))
	}
	p.price = price
	return nil
}

func (p *PricingOption) setBillingPeriod(billingPeriod BillingPeriod) error {
	if err := billingPeriod.Validate(); err != nil {
		return err
	}
	p.billingPeriod = billingPeriod
	return nil
}

func (p *PricingOption) setSizeRange(sizeRange string) error {
	if sizeRange == "" {
		return errs.NewValueIsRequiredError("sizeRange")
	}
	p.sizeRange = sizeRange
	return nil
}
