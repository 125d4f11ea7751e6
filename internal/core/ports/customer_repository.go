package ports

import (
	"context"

	"castlecare/internal/core/domain/model/customer"
	"castlecare/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// A customer is loaded and stored together with its owned addresses.
type CustomerRepository interface {
	// Add persists a new customer aggregate, including its addresses.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate. Addresses
	// added or removed on the aggregate are synchronized with storage.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier,
	// with all owned addresses loaded.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer aggregate by its unique email.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// GetAddress retrieves an address by its id regardless of owner. Callers
	// that need an ownership check compare the address's customer id
	// themselves; a missing address is ObjectNotFound.
	GetAddress(ctx context.Context, id kernel.UUID) (*customer.Address, error)
}
