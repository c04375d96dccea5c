// Package receipt renders order tickets and hands them to a printer.
// Printing is best-effort: by the time a ticket exists the order is already
// committed, so a print failure is reported but never unwinds the order.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"pizza-pos/internal/models"
	"pizza-pos/internal/util"

	"go.uber.org/zap"
)

const divider = "========================="

// Render formats the ticket text for a committed order
func Render(order *models.Order, taxRate float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍕 PIZZA POS RECEIPT 🍕\n%s\n", divider)
	fmt.Fprintf(&b, "Order #: %d\n", order.ID)
	fmt.Fprintf(&b, "Date: %s\n", order.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Customer: %s\n", order.Buyer)
	fmt.Fprintf(&b, "Payment: %s\n", order.PaymentMethod)
	fmt.Fprintf(&b, "Delivery: %s\n", order.DeliveryService)
	if order.CouponCode != "" {
		fmt.Fprintf(&b, "Coupon: %s\n", order.CouponCode)
	}

	b.WriteString("\nITEMS:\n")
	for _, item := range order.Items {
		lineTotal := item.Product.Price * float64(item.Quantity)
		fmt.Fprintf(&b, "%d x %s - $%.2f\n", item.Quantity, item.Product.Name, lineTotal)
	}

	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "Subtotal: $%.2f\n", order.Subtotal)
	fmt.Fprintf(&b, "Tax (%.0f%%): $%.2f\n", taxRate*100, order.Tax)
	fmt.Fprintf(&b, "Total: $%.2f\n", order.Total)
	fmt.Fprintf(&b, "Thank you for your order!\n%s\n", divider)

	return b.String()
}

// Printer sends a rendered ticket to a print device
type Printer interface {
	Print(jobName, ticket string) error
}

// LogPrinter writes tickets to the log. It stands in for a real print device
// in fallback mode and in tests.
type LogPrinter struct{}

// Print logs the ticket
func (LogPrinter) Print(jobName, ticket string) error {
	util.GetLogger().Info("Printing receipt",
		zap.String("job", jobName),
		zap.String("ticket", ticket))
	return nil
}
