package queries

import (
	"context"

	"castlecare/internal/pkg/errs"

	"gorm.io/gorm"
)

// OrderByIDHandler is the read contract for single-order lookups, satisfied by
// both the database handler and its caching decorator.
type OrderByIDHandler interface {
	Handle(ctx context.Context, query GetOrderByIDQuery) (OrderResponse, error)
}

// GetOrderByIDQueryHandler retrieves a single order from the database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError when no order with
// the given id exists.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	return scanOrderRow(rows)
}
