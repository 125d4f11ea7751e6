package ports

import (
	"context"
)

// OrderEvent is the lightweight notification payload dispatched to the message
// broker after order mutations. It carries ids and status only, never the full
// aggregate.
type OrderEvent struct {
	OrderID     string `json:"orderId"`
	CustomerID  string `json:"customerId"`
	ServiceType string `json:"serviceType"`
	Status      string `json:"status"`
}

// OrderEventPublisher dispatches order events to an external queue.
//
// Dispatch is best-effort: callers log and swallow publish errors, so a broker
// outage never fails or rolls back the triggering operation.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
