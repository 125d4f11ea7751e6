// Package pricingrepo provides data transfer objects and mapping functions for pricing persistence.
// This package implements the repository pattern for the pricing option aggregate, handling
// the conversion between domain entities and database representations.
package pricingrepo

import (
	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// PricingOptionDTO represents the database structure for persisting pricing options.
// Features are stored as a native text array so their display order survives round trips.
type PricingOptionDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceType   string          `gorm:"type:varchar(32);not null;index"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Subtitle      string          `gorm:"type:varchar(255)"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	BillingPeriod string          `gorm:"type:varchar(32);not null"`
	Features      pq.StringArray  `gorm:"type:text[]"`
	SizeRange     string          `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for pricing option entities.
// Overrides GORM's default naming convention to use "pricing_options".
func (PricingOptionDTO) TableName() string {
	return "pricing_options"
}

// fromDomain converts a pricing option aggregate to its database representation.
func fromDomain(plan *pricing.PricingOption) PricingOptionDTO {
	return PricingOptionDTO{
		ID:            plan.ID().Bytes(),
		ServiceType:   plan.ServiceType().String(),
		Name:          plan.Name(),
		Subtitle:      plan.Subtitle(),
		Price:         plan.Price(),
		BillingPeriod: plan.BillingPeriod().String(),
		Features:      pq.StringArray(plan.Features()),
		SizeRange:     plan.SizeRange(),
	}
}

// toDomain converts a database DTO to a pricing option aggregate.
func toDomain(dto PricingOptionDTO) (*pricing.PricingOption, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pricing.RestorePricingOption(
		id,
		pricing.ServiceType(dto.ServiceType),
		dto.Name,
		dto.Subtitle,
		dto.Price,
		pricing.BillingPeriod(dto.BillingPeriod),
		[]string(dto.Features),
		dto.SizeRange,
	)
}
