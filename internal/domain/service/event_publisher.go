package service

import (
	"context"
	"time"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventFinalized OrderEventType = "order.finalized"
	OrderEventDeleted   OrderEventType = "order.deleted"
)

// OrderEvent is published for downstream consumers such as bookkeeping.
type OrderEvent struct {
	RequestID     string         `json:"request_id,omitempty"` // For distributed tracing
	Type          OrderEventType `json:"type"`
	OrderNumber   string         `json:"order_number"`
	Timestamp     time.Time      `json:"timestamp"`
	TotalAmount   int64          `json:"total_amount"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	ItemsSold     int            `json:"items_sold"`
	StoreName     string         `json:"store_name,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
