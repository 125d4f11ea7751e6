package queries

import (
	"context"
	"time"

	"castlecare/internal/core/domain/model/worker"
	"castlecare/internal/core/ports"

	"github.com/google/uuid"
)

// WorkerResponse represents a single worker in query results.
type WorkerResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	Available bool      `json:"available"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetAvailableWorkersByRoleQueryHandler lists approved, available workers
// qualified for a service type. Unlike the other read models this goes
// through the worker repository, so the listing applies exactly the filter
// order assignment uses.
type GetAvailableWorkersByRoleQueryHandler struct {
	workers ports.WorkerRepository
}

// NewGetAvailableWorkersByRoleQueryHandler creates a handler for the
// available-worker listing.
func NewGetAvailableWorkersByRoleQueryHandler(
	workers ports.WorkerRepository,
) GetAvailableWorkersByRoleQueryHandler {
	return GetAvailableWorkersByRoleQueryHandler{workers: workers}
}

// Handle executes the listing query.
func (h GetAvailableWorkersByRoleQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableWorkersByRoleQuery,
) ([]WorkerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	available, err := h.workers.GetAllAvailable(ctx, query.ServiceType())
	if err != nil {
		return nil, err
	}

	responses := make([]WorkerResponse, 0, len(available))
	for _, w := range available {
		responses = append(responses, workerResponseFromDomain(w))
	}

	return responses, nil
}

func workerResponseFromDomain(w *worker.Worker) WorkerResponse {
	roles := make([]string, 0, len(w.Roles()))
	for _, role := range w.Roles() {
		roles = append(roles, role.String())
	}

	return WorkerResponse{
		ID:        w.ID().Bytes(),
		FirstName: w.FirstName(),
		LastName:  w.LastName(),
		City:      w.City(),
		State:     w.State(),
		Phone:     w.Phone(),
		Email:     w.Email(),
		Roles:     roles,
		Available: w.Availability(),
		Status:    w.Status().String(),
		CreatedAt: w.CreatedAt(),
	}
}
