// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/order"
	"castlecare/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by customer, worker and status.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	AddressID       uuid.UUID       `gorm:"type:uuid;not null"`
	PricingOptionID uuid.UUID       `gorm:"type:uuid;not null"`
	WorkerID        *uuid.UUID      `gorm:"type:uuid;index"`
	ServiceType     string          `gorm:"type:varchar(32);not null"`
	Date            time.Time       `gorm:"not null"`
	TimeSlot        string          `gorm:"type:varchar(64);not null"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	BillingPeriod   string          `gorm:"type:varchar(32);not null"`
	Status          string          `gorm:"type:varchar(32);not null;index"`
	ProofRef        *string         `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	Version         int64           `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional worker assignment and proof reference.
func fromDomain(order *order.Order) OrderDTO {
	var workerID *uuid.UUID
	if id := order.WorkerID(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	return OrderDTO{
		ID:              order.ID().Bytes(),
		CustomerID:      order.CustomerID().Bytes(),
		AddressID:       order.AddressID().Bytes(),
		PricingOptionID: order.PricingOptionID().Bytes(),
		WorkerID:        workerID,
		ServiceType:     order.ServiceType().String(),
		Date:            order.Date(),
		TimeSlot:        order.TimeSlot(),
		Price:           order.Price(),
		BillingPeriod:   order.BillingPeriod().String(),
		Status:          order.Status().String(),
		ProofRef:        order.ProofRef(),
		CreatedAt:       order.CreatedAt(),
		Version:         order.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, worker assignment and
// version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	pricingOptionID, err := kernel.UUIDFromBytes(dto.PricingOptionID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		workerID = &wID
	}

	return order.RestoreOrder(
		id,
		customerID,
		addressID,
		pricingOptionID,
		workerID,
		pricing.ServiceType(dto.ServiceType),
		dto.Date,
		dto.TimeSlot,
		dto.Price,
		pricing.BillingPeriod(dto.BillingPeriod),
		order.Status(dto.Status),
		dto.ProofRef,
		dto.CreatedAt,
		dto.Version,
	)
}
