package queries

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"
)

var ErrGetPricingOptionByIDQueryIsNotConstructed = errors.New(
	"GetPricingOptionByIDQuery must be created via NewGetPricingOptionByIDQuery constructor",
)

// GetPricingOptionByIDQuery retrieves a single pricing plan.
type GetPricingOptionByIDQuery struct {
	pricingOptionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPricingOptionByIDQuery creates a single-plan query.
func NewGetPricingOptionByIDQuery(pricingOptionID kernel.UUID) (GetPricingOptionByIDQuery, error) {
	if err := pricingOptionID.Validate(); err != nil {
		return GetPricingOptionByIDQuery{}, err
	}

	return GetPricingOptionByIDQuery{
		pricingOptionID: pricingOptionID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPricingOptionByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetPricingOptionByIDQueryIsNotConstructed)
}

// PricingOptionID returns the plan identifier to look up.
func (q GetPricingOptionByIDQuery) PricingOptionID() kernel.UUID {
	return q.pricingOptionID
}
