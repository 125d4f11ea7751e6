package ports

import (
	"context"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
)

// PricingRepository defines the persistence contract for pricing options.
type PricingRepository interface {
	// Add persists a new pricing option to storage.
	Add(ctx context.Context, aggregate *pricing.PricingOption) error

	// Update persists changes to an existing pricing option.
	Update(ctx context.Context, aggregate *pricing.PricingOption) error

	// Get retrieves a pricing option by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pricing.PricingOption, error)

	// GetAllByServiceType retrieves all pricing options for a service type,
	// preserving feature order.
	GetAllByServiceType(ctx context.Context, serviceType pricing.ServiceType) ([]*pricing.PricingOption, error)

	// GetAllByServiceTypeAndBillingPeriod retrieves pricing options for a
	// service type narrowed to a single billing period.
	GetAllByServiceTypeAndBillingPeriod(
		ctx context.Context,
		serviceType pricing.ServiceType,
		billingPeriod pricing.BillingPeriod,
	) ([]*pricing.PricingOption, error)
}
