package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByWorkerIDQueryHandler retrieves a worker's assigned orders from
// the database, soonest visit first.
type GetOrdersByWorkerIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByWorkerIDQueryHandler creates a handler for worker order listings.
func NewGetOrdersByWorkerIDQueryHandler(db *gorm.DB) GetOrdersByWorkerIDQueryHandler {
	return GetOrdersByWorkerIDQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetOrdersByWorkerIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByWorkerIDQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders
		WHERE worker_id = ?
		ORDER BY date, time_slot
	`, query.WorkerID().Bytes()).Rows()
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
