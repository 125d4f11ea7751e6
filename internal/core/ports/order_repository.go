// Package ports defines the contracts between the application core and the
// infrastructure adapters. These interfaces establish dependency inversion
// boundaries for persistence, caching, property lookup, and event dispatch.
package ports

import (
	"context"
	"time"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// locking: the write only applies if the stored version still matches the
	// aggregate's loaded version. A lost race returns VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves all orders placed by the given customer.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllByWorker retrieves all orders assigned to the given worker.
	GetAllByWorker(ctx context.Context, workerID kernel.UUID) ([]*order.Order, error)

	// GetAllByStatus retrieves all orders currently in the given status.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllPendingOlderThan retrieves pending orders created before the cutoff.
	// Used by the escalation job to surface orders no worker has picked up.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
