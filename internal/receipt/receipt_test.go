package receipt

import (
	"testing"
	"time"

	"pizza-pos/internal/models"

	"github.com/stretchr/testify/assert"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:              42,
		CreatedAt:       time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
		Buyer:           "Walk-in Customer",
		PaymentMethod:   "Cash",
		DeliveryService: "None",
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, Product: models.Product{ID: 1, Name: "Margherita", Price: 12.99}},
			{ProductID: 2, Quantity: 1, Product: models.Product{ID: 2, Name: "Pepperoni", Price: 14.99}},
		},
		Subtotal: 40.97,
		Tax:      6.5552,
		Total:    47.5252,
	}
}

func TestRenderTicket(t *testing.T) {
	ticket := Render(testOrder(), 0.16)

	assert.Contains(t, ticket, "PIZZA POS RECEIPT")
	assert.Contains(t, ticket, "Order #: 42")
	assert.Contains(t, ticket, "Customer: Walk-in Customer")
	assert.Contains(t, ticket, "Payment: Cash")
	assert.Contains(t, ticket, "Delivery: None")
	assert.Contains(t, ticket, "2 x Margherita - $25.98")
	assert.Contains(t, ticket, "1 x Pepperoni - $14.99")
	assert.Contains(t, ticket, "Subtotal: $40.97")
	assert.Contains(t, ticket, "Tax (16%): $6.56")
	assert.Contains(t, ticket, "Total: $47.53")
	assert.Contains(t, ticket, "Thank you for your order!")
	assert.NotContains(t, ticket, "Coupon:")
}

func TestRenderTicketWithCoupon(t *testing.T) {
	order := testOrder()
	order.CouponCode = "PIZZA10"

	ticket := Render(order, 0.16)

	assert.Contains(t, ticket, "Coupon: PIZZA10")
}

func TestLogPrinter(t *testing.T) {
	err := LogPrinter{}.Print("PizzaPOS_Order_42", "ticket")
	assert.NoError(t, err)
}
