package broker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pizza-pos/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptMessage(t *testing.T) kafka.Message {
	t.Helper()
	event := models.ReceiptRequestedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   "evt-1",
			EventType: models.EventTypeReceiptRequested,
			Timestamp: time.Now(),
		},
		Order: models.Order{ID: 42, Buyer: "Walk-in Customer", Total: 47.5252},
	}
	value, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Key: []byte("order-42"), Value: value}
}

func TestHandleMessageRoutesReceiptRequested(t *testing.T) {
	eh := NewEventHandler()

	var got *models.ReceiptRequestedEvent
	eh.OnReceiptRequested(func(ctx context.Context, event *models.ReceiptRequestedEvent) error {
		got = event
		return nil
	})

	err := eh.HandleMessage(context.Background(), receiptMessage(t))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(42), got.Order.ID)
}

func TestHandleMessageUnknownTypeIsIgnored(t *testing.T) {
	eh := NewEventHandler()

	msg := kafka.Message{Value: []byte(`{"event_id":"evt-2","event_type":"SOMETHING_ELSE"}`)}
	assert.NoError(t, eh.HandleMessage(context.Background(), msg))
}

func TestHandleMessageBadPayload(t *testing.T) {
	eh := NewEventHandler()

	msg := kafka.Message{Value: []byte("not json")}
	assert.Error(t, eh.HandleMessage(context.Background(), msg))
}

func TestNilPublisherIsNoOp(t *testing.T) {
	var ep *EventPublisher

	err := ep.PublishOrderCreated(context.Background(), &models.OrderCreatedEvent{})
	assert.NoError(t, err)

	err = ep.PublishReceiptRequested(context.Background(), &models.ReceiptRequestedEvent{})
	assert.NoError(t, err)
}
