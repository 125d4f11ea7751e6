// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing the
// aggregate layer; hot paths are wrapped by caching decorators.
package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse represents a single order in query results. JSON tags double
// as the cache serialization format for the cached read path.
type OrderResponse struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customerId"`
	AddressID     uuid.UUID       `json:"addressId"`
	PricingID     uuid.UUID       `json:"pricingOptionId"`
	WorkerID      *uuid.UUID      `json:"workerId,omitempty"`
	ServiceType   string          `json:"serviceType"`
	Date          time.Time       `json:"date"`
	TimeSlot      string          `json:"timeSlot"`
	Price         decimal.Decimal `json:"price"`
	BillingPeriod string          `json:"billingPeriod"`
	Status        string          `json:"status"`
	ProofRef      *string         `json:"proofRef,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

const orderSelectColumns = `
	id,
	customer_id,
	address_id,
	pricing_option_id,
	worker_id,
	service_type,
	date,
	time_slot,
	price,
	billing_period,
	status,
	proof_ref,
	created_at
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp     OrderResponse
		workerID uuid.NullUUID
		proofRef sql.NullString
	)

	err := rows.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.AddressID,
		&resp.PricingID,
		&workerID,
		&resp.ServiceType,
		&resp.Date,
		&resp.TimeSlot,
		&resp.Price,
		&resp.BillingPeriod,
		&resp.Status,
		&proofRef,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if workerID.Valid {
		resp.WorkerID = &workerID.UUID
	}
	if proofRef.Valid {
		resp.ProofRef = &proofRef.String
	}

	return resp, nil
}
