package service

import (
	"context"
	"fmt"
	"time"

	"pizza-pos/config"
	"pizza-pos/internal/apperr"
	"pizza-pos/internal/broker"
	"pizza-pos/internal/cart"
	"pizza-pos/internal/ledger"
	"pizza-pos/internal/models"
	"pizza-pos/internal/receipt"
	"pizza-pos/internal/store"
	"pizza-pos/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService converts the working cart into a committed order. It is the
// only multi-step sequence in the system: the ledger append and cart clear
// happen strictly after the source confirms the order, never before.
type CheckoutService struct {
	src       store.Source
	cart      *cart.Cart
	ledger    *ledger.Ledger
	publisher *broker.EventPublisher
	printer   receipt.Printer
	business  config.BusinessConfig
	logger    *zap.Logger
}

// NewCheckoutService creates a new checkout service. publisher may be nil in
// fallback mode; printer then handles tickets directly.
func NewCheckoutService(
	src store.Source,
	c *cart.Cart,
	l *ledger.Ledger,
	publisher *broker.EventPublisher,
	printer receipt.Printer,
	business config.BusinessConfig,
) *CheckoutService {
	return &CheckoutService{
		src:       src,
		cart:      c,
		ledger:    l,
		publisher: publisher,
		printer:   printer,
		business:  business,
		logger:    util.GetLogger(),
	}
}

// CheckoutRequest carries the operator's input for one checkout attempt.
// Blank fields fall back to the configured walk-in defaults.
type CheckoutRequest struct {
	Buyer           string `json:"buyer"`
	PaymentMethod   string `json:"payment_method"`
	DeliveryService string `json:"delivery_service"`
	CouponCode      string `json:"coupon_code"`
}

// Checkout runs one checkout attempt: guard, collect, compute, submit,
// commit, report. On a submit failure the cart and ledger are left exactly
// as they were, so the operator can retry without losing the cart.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "CheckoutService.Checkout")
	defer span.End()

	lines := s.cart.Lines()
	if len(lines) == 0 {
		util.CheckoutFailedTotal.WithLabelValues("empty_cart").Inc()
		return nil, apperr.EmptyCart()
	}

	if req.Buyer == "" {
		req.Buyer = s.business.Buyer
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = s.business.PaymentMethod
	}
	if req.DeliveryService == "" {
		req.DeliveryService = s.business.DeliveryService
	}

	totals := s.cart.ComputeTotals()
	items := make([]models.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Product:   line.Product,
		}
	}

	draft := models.OrderDraft{
		Buyer:           req.Buyer,
		Items:           items,
		PaymentMethod:   req.PaymentMethod,
		DeliveryService: req.DeliveryService,
		CouponCode:      req.CouponCode,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Total:           totals.Total,
	}

	order, err := s.src.CreateOrder(ctx, draft)
	if err != nil {
		util.CheckoutFailedTotal.WithLabelValues("submission").Inc()
		s.logger.Error("Order submission failed", zap.Error(err))
		return nil, apperr.Submission("failed to submit order").WithError(err)
	}

	// Commit: only after the source confirmed the order.
	s.ledger.Append(*order)
	s.cart.Clear()

	util.OrdersCreatedTotal.Inc()
	util.OrderTotalAmount.Observe(order.Total)
	s.logger.Info("Order committed",
		zap.Int64("order_id", order.ID),
		zap.String("buyer", order.Buyer),
		zap.Float64("total", order.Total))

	s.publishOrderCreated(ctx, order)
	if err := s.requestReceipt(ctx, order); err != nil {
		s.logger.Warn("Receipt printing failed", zap.Int64("order_id", order.ID), zap.Error(err))
	}

	return order, nil
}

// GetOrder looks an order up in the ledger
func (s *CheckoutService) GetOrder(id int64) (*models.Order, error) {
	order, err := s.ledger.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound(fmt.Sprintf("order %d not found", id)).WithError(err)
	}
	return order, nil
}

// ListOrders returns the order history, most recent first
func (s *CheckoutService) ListOrders() []models.Order {
	return s.ledger.List()
}

// PrintReceipt reprints the ticket for a committed order. Failure is
// surfaced to the caller but the order's committed state is unaffected.
func (s *CheckoutService) PrintReceipt(ctx context.Context, orderID int64) error {
	order, err := s.ledger.FindByID(orderID)
	if err != nil {
		return apperr.NotFound(fmt.Sprintf("order %d not found", orderID)).WithError(err)
	}
	return s.requestReceipt(ctx, order)
}

func (s *CheckoutService) publishOrderCreated(ctx context.Context, order *models.Order) {
	event := &models.OrderCreatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderCreated,
			Timestamp: time.Now(),
		},
		Order: *order,
	}
	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderCreated event", zap.Error(err))
	}
}

// requestReceipt enqueues a print job in connected mode, or prints directly
// through the local printer in fallback mode.
func (s *CheckoutService) requestReceipt(ctx context.Context, order *models.Order) error {
	if s.publisher != nil {
		event := &models.ReceiptRequestedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeReceiptRequested,
				Timestamp: time.Now(),
			},
			Order: *order,
		}
		if err := s.publisher.PublishReceiptRequested(ctx, event); err != nil {
			util.ReceiptsFailedTotal.Inc()
			return fmt.Errorf("failed to enqueue receipt job: %w", err)
		}
		return nil
	}

	ticket := receipt.Render(order, s.business.TaxRate)
	jobName := fmt.Sprintf("PizzaPOS_Order_%d", order.ID)
	if err := s.printer.Print(jobName, ticket); err != nil {
		util.ReceiptsFailedTotal.Inc()
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	util.ReceiptsPrintedTotal.Inc()
	return nil
}

// SeedLedger loads existing orders from the active source into the ledger.
// A failure here is logged and the session starts with an empty history.
func (s *CheckoutService) SeedLedger(ctx context.Context) {
	orders, err := s.src.ListOrders(ctx)
	if err != nil {
		s.logger.Warn("Failed to load order history", zap.Error(err))
		return
	}
	s.ledger.Seed(orders)
}
