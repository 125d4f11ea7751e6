package queries

import (
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/pkg/guard"
)

var ErrGetOrdersByCustomerIDQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerIDQuery must be created via NewGetOrdersByCustomerIDQuery constructor",
)

// GetOrdersByCustomerIDQuery retrieves all orders placed by a customer.
type GetOrdersByCustomerIDQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerIDQuery creates a query for a customer's orders.
func NewGetOrdersByCustomerIDQuery(customerID kernel.UUID) (GetOrdersByCustomerIDQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrdersByCustomerIDQuery{}, err
	}

	return GetOrdersByCustomerIDQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerIDQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (q GetOrdersByCustomerIDQuery) CustomerID() kernel.UUID {
	return q.customerID
}
