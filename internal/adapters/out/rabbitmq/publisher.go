// Package rabbitmq implements the order event publisher on a RabbitMQ topic
// exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"castlecare/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderEventPublisher implements ports.OrderEventPublisher over a durable
// topic exchange. Routing keys follow "order.<status>" so consumers can bind
// per status.
type OrderEventPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewOrderEventPublisher dials the broker and declares the exchange.
func NewOrderEventPublisher(url, exchange string) (*OrderEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &OrderEventPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish dispatches an order event to the exchange.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	routingKey := "order." + strings.ToLower(event.Status)
	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// Close releases the channel and connection.
func (p *OrderEventPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
