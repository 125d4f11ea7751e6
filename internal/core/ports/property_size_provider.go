package ports

import (
	"context"

	"castlecare/internal/core/domain/model/customer"
)

// PropertySize holds the measured size of a property as reported by the
// external property-data service.
type PropertySize struct {
	LivingAreaSqFt int
	LotSize        string
}

// PropertySizeProvider looks up the measured size of a property by address.
//
// Implementations must never propagate lookup failures: when the external
// service is unavailable or returns an unparseable payload, a configured
// fallback size is substituted so order creation can proceed.
type PropertySizeProvider interface {
	Lookup(ctx context.Context, address *customer.Address) PropertySize
}
