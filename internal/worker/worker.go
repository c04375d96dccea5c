package worker

import (
	"context"
	"fmt"

	"pizza-pos/internal/broker"
	"pizza-pos/internal/models"
	"pizza-pos/internal/receipt"
	"pizza-pos/internal/util"

	"go.uber.org/zap"
)

// ReceiptWorker consumes receipt print jobs and drives the print device.
// Jobs arrive after their order is committed, so a print failure only costs
// a ticket, never an order.
type ReceiptWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	printer      receipt.Printer
	taxRate      float64
	logger       *zap.Logger
}

// NewReceiptWorker creates a new receipt worker
func NewReceiptWorker(consumer *broker.Consumer, printer receipt.Printer, taxRate float64) *ReceiptWorker {
	w := &ReceiptWorker{
		consumer:     consumer,
		eventHandler: broker.NewEventHandler(),
		printer:      printer,
		taxRate:      taxRate,
		logger:       util.GetLogger(),
	}
	w.eventHandler.OnReceiptRequested(w.handleReceiptRequested)
	return w
}

// Start starts the worker
func (w *ReceiptWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting receipt worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *ReceiptWorker) Stop() error {
	w.logger.Info("Stopping receipt worker")
	return w.consumer.Close()
}

func (w *ReceiptWorker) handleReceiptRequested(ctx context.Context, event *models.ReceiptRequestedEvent) error {
	ticket := receipt.Render(&event.Order, w.taxRate)
	jobName := fmt.Sprintf("PizzaPOS_Order_%d", event.Order.ID)

	if err := w.printer.Print(jobName, ticket); err != nil {
		util.ReceiptsFailedTotal.Inc()
		w.logger.Warn("Receipt print failed",
			zap.Int64("order_id", event.Order.ID),
			zap.Error(err))
		// Best effort: do not redeliver, the operator can reprint.
		return nil
	}

	util.ReceiptsPrintedTotal.Inc()
	return nil
}
