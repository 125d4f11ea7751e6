package queries

import (
	"errors"

	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/pkg/guard"
)

var ErrGetAvailableWorkersByRoleQueryIsNotConstructed = errors.New(
	"GetAvailableWorkersByRoleQuery must be created via NewGetAvailableWorkersByRoleQuery constructor",
)

// GetAvailableWorkersByRoleQuery lists the workers a dispatcher can assign
// for a service type.
type GetAvailableWorkersByRoleQuery struct {
	serviceType pricing.ServiceType

	guard guard.ConstructorGuard
}

// NewGetAvailableWorkersByRoleQuery creates a query for the available-worker
// listing.
func NewGetAvailableWorkersByRoleQuery(
	serviceType pricing.ServiceType,
) (GetAvailableWorkersByRoleQuery, error) {
	if err := serviceType.Validate(); err != nil {
		return GetAvailableWorkersByRoleQuery{}, err
	}

	return GetAvailableWorkersByRoleQuery{
		serviceType: serviceType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableWorkersByRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableWorkersByRoleQueryIsNotConstructed)
}

// ServiceType returns the role to filter workers by.
func (q GetAvailableWorkersByRoleQuery) ServiceType() pricing.ServiceType {
	return q.serviceType
}
