package service

import (
	"context"
	"errors"
	"testing"

	"pizza-pos/config"
	"pizza-pos/internal/apperr"
	"pizza-pos/internal/cart"
	"pizza-pos/internal/ledger"
	"pizza-pos/internal/models"
	"pizza-pos/internal/receipt"
	"pizza-pos/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBusiness = config.BusinessConfig{
	TaxRate:         0.16,
	Buyer:           "Walk-in Customer",
	PaymentMethod:   "Cash",
	DeliveryService: "None",
}

// failingSource rejects order submission while serving everything else
type failingSource struct {
	*store.MemStore
}

func (f *failingSource) CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	return nil, errors.New("backend rejected the order")
}

func newCheckoutFixture(src store.Source) (*CheckoutService, *cart.Cart, *ledger.Ledger) {
	c := cart.New(0.16)
	l := ledger.New()
	svc := NewCheckoutService(src, c, l, nil, receipt.LogPrinter{}, testBusiness)
	return svc, c, l
}

func fillCart(t *testing.T, src store.Source, c *cart.Cart) {
	t.Helper()
	products, err := src.ListProducts(context.Background())
	require.NoError(t, err)

	// Margherita x2, Pepperoni x1.
	c.AddItem(products[0])
	c.AddItem(products[0])
	c.AddItem(products[1])
}

func TestCheckoutEmptyCart(t *testing.T) {
	src := store.NewMemStore()
	svc, c, l := newCheckoutFixture(src)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{})

	assert.True(t, apperr.Is(err, apperr.CodeEmptyCart))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, l.Len())

	orders, err := src.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutSuccess(t *testing.T) {
	src := store.NewMemStore()
	svc, c, l := newCheckoutFixture(src)
	fillCart(t, src, c)

	before := c.ComputeTotals()
	order, err := svc.Checkout(context.Background(), CheckoutRequest{Buyer: "Dana", PaymentMethod: "Card - Visa"})
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, "Dana", order.Buyer)
	assert.InDelta(t, 40.97, order.Subtotal, 1e-9)
	assert.InDelta(t, 6.5552, order.Tax, 1e-9)
	assert.InDelta(t, 47.5252, order.Total, 1e-9)
	assert.InDelta(t, before.Total, order.Total, 1e-9)

	// Ledger gains exactly one order at the head; cart is empty.
	require.Equal(t, 1, l.Len())
	assert.Equal(t, order.ID, l.List()[0].ID)
	assert.Equal(t, 0, c.Len())
}

func TestCheckoutAppliesWalkInDefaults(t *testing.T) {
	src := store.NewMemStore()
	svc, c, _ := newCheckoutFixture(src)
	fillCart(t, src, c)

	order, err := svc.Checkout(context.Background(), CheckoutRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Walk-in Customer", order.Buyer)
	assert.Equal(t, "Cash", order.PaymentMethod)
	assert.Equal(t, "None", order.DeliveryService)
}

func TestCheckoutRecordsCouponCode(t *testing.T) {
	src := store.NewMemStore()
	svc, c, _ := newCheckoutFixture(src)
	fillCart(t, src, c)

	order, err := svc.Checkout(context.Background(), CheckoutRequest{CouponCode: "PIZZA10"})
	require.NoError(t, err)

	assert.Equal(t, "PIZZA10", order.CouponCode)
	// Coupon is recorded, not applied to the totals.
	assert.InDelta(t, 47.5252, order.Total, 1e-9)
}

func TestCheckoutSubmissionFailureLeavesStateUntouched(t *testing.T) {
	src := &failingSource{store.NewMemStore()}
	svc, c, l := newCheckoutFixture(src)
	fillCart(t, src, c)

	linesBefore := c.Lines()
	totalsBefore := c.ComputeTotals()

	_, err := svc.Checkout(context.Background(), CheckoutRequest{Buyer: "Dana"})
	assert.True(t, apperr.Is(err, apperr.CodeSubmission))

	// Cart unchanged: same lines, same totals. Ledger unchanged.
	assert.Equal(t, linesBefore, c.Lines())
	assert.Equal(t, totalsBefore, c.ComputeTotals())
	assert.Equal(t, 0, l.Len())
}

func TestCheckoutOrderItemsAreFrozenSnapshots(t *testing.T) {
	src := store.NewMemStore()
	svc, c, l := newCheckoutFixture(src)
	fillCart(t, src, c)

	order, err := svc.Checkout(context.Background(), CheckoutRequest{})
	require.NoError(t, err)

	// A later catalog price change must not reach the committed order.
	products, err := src.ListProducts(context.Background())
	require.NoError(t, err)
	updated := products[0]
	updated.Price = 99.99
	_, err = src.UpdateProduct(context.Background(), updated)
	require.NoError(t, err)

	stored, err := l.FindByID(order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.99, stored.Items[0].Product.Price, 1e-9)
}

func TestGetOrder(t *testing.T) {
	src := store.NewMemStore()
	svc, c, _ := newCheckoutFixture(src)
	fillCart(t, src, c)

	order, err := svc.Checkout(context.Background(), CheckoutRequest{})
	require.NoError(t, err)

	found, err := svc.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = svc.GetOrder(order.ID + 1)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestPrintReceiptUnknownOrder(t *testing.T) {
	src := store.NewMemStore()
	svc, _, _ := newCheckoutFixture(src)

	err := svc.PrintReceipt(context.Background(), 12345)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestPrintReceiptCommittedOrder(t *testing.T) {
	src := store.NewMemStore()
	svc, c, _ := newCheckoutFixture(src)
	fillCart(t, src, c)

	order, err := svc.Checkout(context.Background(), CheckoutRequest{})
	require.NoError(t, err)

	assert.NoError(t, svc.PrintReceipt(context.Background(), order.ID))
}

func TestSeedLedger(t *testing.T) {
	src := store.NewMemStore()
	_, err := src.CreateOrder(context.Background(), models.OrderDraft{Buyer: "Ana"})
	require.NoError(t, err)

	svc, _, l := newCheckoutFixture(src)
	svc.SeedLedger(context.Background())

	assert.Equal(t, 1, l.Len())
}
