package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PricingOptionsHandler is the read contract for plan listings, satisfied by
// both the database handler and its caching decorator.
type PricingOptionsHandler interface {
	Handle(ctx context.Context, query GetPricingOptionsQuery) ([]PricingOptionResponse, error)
}

// GetPricingOptionsQueryHandler retrieves plan listings from the database.
type GetPricingOptionsQueryHandler struct {
	db *gorm.DB
}

// NewGetPricingOptionsQueryHandler creates a handler for plan listings.
func NewGetPricingOptionsQueryHandler(db *gorm.DB) GetPricingOptionsQueryHandler {
	return GetPricingOptionsQueryHandler{db: db}
}

// Handle executes the listing query, cheapest plan first.
func (h GetPricingOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetPricingOptionsQuery,
) ([]PricingOptionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			service_type,
			name,
			subtitle,
			price,
			billing_period,
			features,
			size_range
		FROM pricing_options
		WHERE service_type = ?
	`
	args := []any{string(query.ServiceType())}

	if query.BillingPeriod() != nil {
		sql += ` AND billing_period = ?`
		args = append(args, string(*query.BillingPeriod()))
	}
	sql += ` ORDER BY price`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]PricingOptionResponse, 0)
	for rows.Next() {
		var (
			resp     PricingOptionResponse
			features pq.StringArray
		)

		err = rows.Scan(
			&resp.ID,
			&resp.ServiceType,
			&resp.Name,
			&resp.Subtitle,
			&resp.Price,
			&resp.BillingPeriod,
			&features,
			&resp.SizeRange,
		)
		if err != nil {
			return nil, err
		}

		resp.Features = features
		plans = append(plans, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}
