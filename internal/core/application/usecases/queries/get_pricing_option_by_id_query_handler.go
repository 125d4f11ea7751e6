package queries

import (
	"context"

	"castlecare/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PricingOptionByIDHandler is the read contract for single-plan lookups,
// satisfied by both the database handler and its caching decorator.
type PricingOptionByIDHandler interface {
	Handle(ctx context.Context, query GetPricingOptionByIDQuery) (PricingOptionResponse, error)
}

// GetPricingOptionByIDQueryHandler retrieves a single plan from the database.
type GetPricingOptionByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetPricingOptionByIDQueryHandler creates a handler for single-plan lookups.
func NewGetPricingOptionByIDQueryHandler(db *gorm.DB) GetPricingOptionByIDQueryHandler {
	return GetPricingOptionByIDQueryHandler{db: db}
}

// Handle executes the lookup.
func (h GetPricingOptionByIDQueryHandler) Handle(
	ctx context.Context,
	query GetPricingOptionByIDQuery,
) (PricingOptionResponse, error) {
	if err := query.Validate(); err != nil {
		return PricingOptionResponse{}, err
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
		WHERE id = ?
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, query.PricingOptionID().Bytes()).Rows()
	if err != nil {
		return PricingOptionResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return PricingOptionResponse{}, err
		}
		return PricingOptionResponse{}, errs.NewObjectNotFoundError(
			"pricingOptionId", query.PricingOptionID().String())
	}

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
		return PricingOptionResponse{}, err
	}

	resp.Features = features
	return resp, nil
}
