// Package workerrepo provides data transfer objects and mapping functions for worker persistence.
// This package implements the repository pattern for the worker domain aggregate, handling
// the conversion between domain entities and database representations.
package workerrepo

import (
	"time"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/core/domain/model/worker"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// WorkerDTO represents the database structure for persisting worker aggregates.
// Roles are stored as a native text array for membership queries.
type WorkerDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FirstName       string         `gorm:"type:varchar(255);not null"`
	LastName        string         `gorm:"type:varchar(255);not null"`
	Age             int            `gorm:"type:int;not null"`
	Street          string         `gorm:"type:varchar(255);not null"`
	City            string         `gorm:"type:varchar(255);not null"`
	State           string         `gorm:"type:varchar(64);not null"`
	Zip             string         `gorm:"type:varchar(16);not null"`
	Phone           string         `gorm:"type:varchar(32);not null"`
	Email           string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Roles           pq.StringArray `gorm:"type:text[];not null"`
	Availability    bool           `gorm:"not null"`
	Status          string         `gorm:"type:varchar(32);not null;index"`
	PayoutAccountID *string        `gorm:"type:varchar(255)"`
	CreatedAt       time.Time      `gorm:"not null"`
}

// TableName specifies the database table name for worker entities.
// Overrides GORM's default naming convention to use "workers".
func (WorkerDTO) TableName() string {
	return "workers"
}

// fromDomain converts a worker domain aggregate to its database representation.
func fromDomain(worker *worker.Worker) WorkerDTO {
	roles := make(pq.StringArray, 0, len(worker.Roles()))
	for _, role := range worker.Roles() {
		roles = append(roles, role.String())
	}

	return WorkerDTO{
		ID:              worker.ID().Bytes(),
		FirstName:       worker.FirstName(),
		LastName:        worker.LastName(),
		Age:             worker.Age(),
		Street:          worker.Street(),
		City:            worker.City(),
		State:           worker.State(),
		Zip:             worker.Zip(),
		Phone:           worker.Phone(),
		Email:           worker.Email(),
		Roles:           roles,
		Availability:    worker.Availability(),
		Status:          worker.Status().String(),
		PayoutAccountID: worker.PayoutAccountID(),
		CreatedAt:       worker.CreatedAt(),
	}
}

// toDomain converts a database DTO to a worker domain aggregate.
// Reconstructs the complete aggregate including approval status and
// availability using RestoreWorker.
func toDomain(dto WorkerDTO) (*worker.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roles := make([]pricing.ServiceType, 0, len(dto.Roles))
	for _, role := range dto.Roles {
		roles = append(roles, pricing.ServiceType(role))
	}

	return worker.RestoreWorker(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Age,
		dto.Street,
		dto.City,
		dto.State,
		dto.Zip,
		dto.Phone,
		dto.Email,
		roles,
		dto.Availability,
		worker.Status(dto.Status),
		dto.PayoutAccountID,
		dto.CreatedAt,
	)
}
