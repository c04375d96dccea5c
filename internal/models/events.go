package models

import "time"

// Event types
const (
	EventTypeOrderCreated     = "ORDER_CREATED"
	EventTypeReceiptRequested = "RECEIPT_REQUESTED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderCreatedEvent published after a checkout commits
type OrderCreatedEvent struct {
	BaseEvent
	Order Order `json:"order"`
}

// ReceiptRequestedEvent asks the print worker to produce a ticket for an order
type ReceiptRequestedEvent struct {
	BaseEvent
	Order Order `json:"order"`
}
