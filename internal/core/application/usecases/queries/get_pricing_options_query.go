package queries

import (
	"errors"

	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrGetPricingOptionsQueryIsNotConstructed = errors.New(
	"GetPricingOptionsQuery must be created via NewGetPricingOptionsQuery constructor",
)

// GetPricingOptionsQuery retrieves the pricing plans for a service type,
// optionally narrowed to a single billing period. These listings back the
// public plan pages and are served through the caching decorator.
type GetPricingOptionsQuery struct {
	serviceType   pricing.ServiceType
	billingPeriod *pricing.BillingPeriod

	guard guard.ConstructorGuard
}

// NewGetPricingOptionsQuery creates a plan listing query.
// billingPeriod may be nil for the unfiltered listing.
func NewGetPricingOptionsQuery(
	serviceType pricing.ServiceType,
	billingPeriod *pricing.BillingPeriod,
) (GetPricingOptionsQuery, error) {
	if err := serviceType.Validate(); err != nil {
		return GetPricingOptionsQuery{}, err
	}
	if billingPeriod != nil {
		if err := billingPeriod.Validate(); err != nil {
			return GetPricingOptionsQuery{}, err
		}
	}

	return GetPricingOptionsQuery{
		serviceType:   serviceType,
		billingPeriod: billingPeriod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPricingOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetPricingOptionsQueryIsNotConstructed)
}

// ServiceType returns the service type to list plans for.
func (q GetPricingOptionsQuery) ServiceType() pricing.ServiceType {
	return q.serviceType
}

// BillingPeriod returns the billing period filter, or nil when unfiltered.
func (q GetPricingOptionsQuery) BillingPeriod() *pricing.BillingPeriod {
	return q.billingPeriod
}

// CacheKeySuffix returns the billing-period part of the listing cache key.
func (q GetPricingOptionsQuery) CacheKeySuffix() string {
	if q.billingPeriod == nil {
		return ""
	}
	return string(*q.billingPeriod)
}

// PricingOptionResponse represents a single plan in listing results. JSON tags
// double as the cache serialization format.
type PricingOptionResponse struct {
	ID            uuid.UUID       `json:"id"`
	ServiceType   string          `json:"serviceType"`
	Name          string          `json:"name"`
	Subtitle      string          `json:"subtitle,omitempty"`
	Price         decimal.Decimal `json:"price"`
	BillingPeriod string          `json:"billingPeriod"`
	Features      []string        `json:"features"`
	SizeRange     string          `json:"sizeRange"`
}
