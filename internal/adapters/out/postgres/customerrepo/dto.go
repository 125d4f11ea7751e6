// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"time"

	"castlecare/internal/core/domain/model/customer"
	"castlecare/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// Maps customer domain entities to relational database tables with proper foreign key relationships.
type CustomerDTO struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	FirstName string       `gorm:"type:varchar(255);not null"`
	LastName  string       `gorm:"type:varchar(255);not null"`
	Email     string       `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     string       `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time    `gorm:"not null"`
	Addresses []AddressDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents the database structure for persisting service address entities.
// Links to customer via foreign key.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Street     string    `gorm:"type:varchar(255);not null"`
	City       string    `gorm:"type:varchar(255);not null"`
	State      string    `gorm:"type:varchar(64);not null"`
	Zip        string    `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for address entities.
// Overrides GORM's default naming convention to use "addresses".
func (AddressDTO) TableName() string {
	return "addresses"
}

// fromDomain converts a customer domain aggregate to its database representation.
// Maps all aggregate entities including owned addresses.
func fromDomain(customer *customer.Customer) CustomerDTO {
	customerID := customer.ID().Bytes()
	addresses := make([]AddressDTO, 0, len(customer.Addresses()))

	for _, address := range customer.Addresses() {
		addresses = append(addresses, AddressDTO{
			ID:         address.ID().Bytes(),
			CustomerID: customerID,
			Street:     address.Street(),
			City:       address.City(),
			State:      address.State(),
			Zip:        address.Zip(),
		})
	}

	return CustomerDTO{
		ID:        customerID,
		FirstName: customer.FirstName(),
		LastName:  customer.LastName(),
		Email:     customer.Email(),
		Phone:     customer.Phone(),
		CreatedAt: customer.CreatedAt(),
		Addresses: addresses,
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
// Reconstructs the complete aggregate including all addresses using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addresses := make([]*customer.Address, 0, len(dto.Addresses))
	for _, addressDTO := range dto.Addresses {
		addressID, addressErr := kernel.UUIDFromBytes(addressDTO.ID[:])
		if addressErr != nil {
			return nil, addressErr
		}

		address, addressErr := customer.NewAddress(
			addressID,
			id,
			addressDTO.Street,
			addressDTO.City,
			addressDTO.State,
			addressDTO.Zip,
		)
		if addressErr != nil {
			return nil, addressErr
		}

		addresses = append(addresses, address)
	}

	return customer.RestoreCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.Phone,
		addresses,
		dto.CreatedAt,
	)
}
