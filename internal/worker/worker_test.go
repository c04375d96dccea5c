package worker

import (
	"context"
	"errors"
	"testing"

	"pizza-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPrinter struct {
	jobs    []string
	tickets []string
	fail    bool
}

func (p *recordingPrinter) Print(jobName, ticket string) error {
	if p.fail {
		return errors.New("printer offline")
	}
	p.jobs = append(p.jobs, jobName)
	p.tickets = append(p.tickets, ticket)
	return nil
}

func receiptEvent() *models.ReceiptRequestedEvent {
	return &models.ReceiptRequestedEvent{
		BaseEvent: models.BaseEvent{EventID: "evt-1", EventType: models.EventTypeReceiptRequested},
		Order: models.Order{
			ID:    42,
			Buyer: "Walk-in Customer",
			Items: []models.OrderItem{
				{ProductID: 1, Quantity: 2, Product: models.Product{ID: 1, Name: "Margherita", Price: 12.99}},
			},
			Subtotal: 25.98,
			Tax:      4.1568,
			Total:    30.1368,
		},
	}
}

func TestReceiptWorkerPrintsTicket(t *testing.T) {
	printer := &recordingPrinter{}
	w := NewReceiptWorker(nil, printer, 0.16)

	err := w.handleReceiptRequested(context.Background(), receiptEvent())
	require.NoError(t, err)

	require.Len(t, printer.jobs, 1)
	assert.Equal(t, "PizzaPOS_Order_42", printer.jobs[0])
	assert.Contains(t, printer.tickets[0], "2 x Margherita")
	assert.Contains(t, printer.tickets[0], "Total: $30.14")
}

func TestReceiptWorkerPrintFailureIsSwallowed(t *testing.T) {
	printer := &recordingPrinter{fail: true}
	w := NewReceiptWorker(nil, printer, 0.16)

	// Best effort: the job is consumed even when the device is offline.
	err := w.handleReceiptRequested(context.Background(), receiptEvent())
	assert.NoError(t, err)
}
