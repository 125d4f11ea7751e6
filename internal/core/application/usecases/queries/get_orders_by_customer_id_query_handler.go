package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByCustomerIDQueryHandler retrieves a customer's order history from
// the database, most recent first.
type GetOrdersByCustomerIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerIDQueryHandler creates a handler for customer order listings.
func NewGetOrdersByCustomerIDQueryHandler(db *gorm.DB) GetOrdersByCustomerIDQueryHandler {
	return GetOrdersByCustomerIDQueryHandler{db: db}
}

// Handle executes the listing query. An unknown customer yields an empty
// slice, not an error.
func (h GetOrdersByCustomerIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerIDQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
