package queries

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"
)

var ErrGetOrdersByWorkerIDQueryIsNotConstructed = errors.New(
	"GetOrdersByWorkerIDQuery must be created via NewGetOrdersByWorkerIDQuery constructor",
)

// GetOrdersByWorkerIDQuery retrieves all orders assigned to a worker.
type GetOrdersByWorkerIDQuery struct {
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByWorkerIDQuery creates a query for a worker's assigned orders.
func NewGetOrdersByWorkerIDQuery(workerID kernel.UUID) (GetOrdersByWorkerIDQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetOrdersByWorkerIDQuery{}, err
	}

	return GetOrdersByWorkerIDQuery{
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByWorkerIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByWorkerIDQueryIsNotConstructed)
}

// WorkerID returns the identifier of the worker.
func (q GetOrdersByWorkerIDQuery) WorkerID() kernel.UUID {
	return q.workerID
}
