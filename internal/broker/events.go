package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"pizza-pos/internal/models"
	"pizza-pos/internal/util"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventPublisher publishes POS domain events. A nil *EventPublisher is a
// valid no-op, which is how fallback mode runs without a broker.
type EventPublisher struct {
	orders   *Producer
	receipts *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(orders, receipts *Producer) *EventPublisher {
	return &EventPublisher{orders: orders, receipts: receipts}
}

// PublishOrderCreated publishes an OrderCreated event after checkout commits
func (ep *EventPublisher) PublishOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error {
	if ep == nil {
		return nil
	}
	key := fmt.Sprintf("order-%d", event.Order.ID)
	return ep.orders.PublishEvent(ctx, key, event)
}

// PublishReceiptRequested enqueues a receipt print job
func (ep *EventPublisher) PublishReceiptRequested(ctx context.Context, event *models.ReceiptRequestedEvent) error {
	if ep == nil {
		return nil
	}
	key := fmt.Sprintf("order-%d", event.Order.ID)
	return ep.receipts.PublishEvent(ctx, key, event)
}

// EventHandler routes incoming events to registered callbacks
type EventHandler struct {
	onReceiptRequested func(context.Context, *models.ReceiptRequestedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnReceiptRequested registers a handler for ReceiptRequested events
func (eh *EventHandler) OnReceiptRequested(handler func(context.Context, *models.ReceiptRequestedEvent) error) {
	eh.onReceiptRequested = handler
}

// HandleMessage routes a message to the matching handler
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	switch baseEvent.EventType {
	case models.EventTypeReceiptRequested:
		if eh.onReceiptRequested != nil {
			var event models.ReceiptRequestedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ReceiptRequested event: %w", err)
			}
			return eh.onReceiptRequested(ctx, &event)
		}

	default:
		util.GetLogger().Debug("Unhandled event type", zap.String("type", baseEvent.EventType))
	}

	return nil
}
