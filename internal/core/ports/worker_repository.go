package ports

import (
	"context"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/core/domain/model/worker"
)

// WorkerRepository defines the persistence contract for worker aggregates.
type WorkerRepository interface {
	// Add persists a new worker aggregate to storage.
	Add(ctx context.Context, aggregate *worker.Worker) error

	// Update persists changes to an existing worker aggregate.
	Update(ctx context.Context, aggregate *worker.Worker) error

	// Get retrieves a worker aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)

	// GetByEmail retrieves a worker aggregate by its unique email.
	GetByEmail(ctx context.Context, email string) (*worker.Worker, error)

	// GetAllAvailable retrieves approved workers whose availability flag is
	// set and whose role set contains the given service type.
	GetAllAvailable(ctx context.Context, serviceType pricing.ServiceType) ([]*worker.Worker, error)
}
