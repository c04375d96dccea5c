package cart

import (
	"sync"

	"pizza-pos/internal/models"
	"pizza-pos/internal/util"
)

// Totals is the derived financial state of the cart
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Cart holds the line items of the order in progress. Lines keep insertion
// order and there is at most one line per product; adding an existing product
// bumps its quantity. Totals are derived on demand, never cached.
type Cart struct {
	mu      sync.Mutex
	lines   []models.CartLine
	taxRate float64
}

// New creates an empty cart with the given tax rate
func New(taxRate float64) *Cart {
	return &Cart{taxRate: taxRate}
}

// AddItem adds one unit of the product. An existing line increments its
// quantity; a new line starts at quantity 1 with a snapshot of the product
// as it is right now.
func (c *Cart) AddItem(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, models.CartLine{
		ProductID: product.ID,
		Quantity:  1,
		Product:   product,
	})
	util.CartLines.Set(float64(len(c.lines)))
}

// RemoveItem deletes the line for the product; absent is a no-op
func (c *Cart) RemoveItem(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	util.CartLines.Set(float64(len(c.lines)))
}

// SetQuantity sets the line's quantity; qty <= 0 removes the line. There is
// no upper bound on quantity.
func (c *Cart) SetQuantity(productID int64, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty <= 0 {
		c.removeLocked(productID)
		return
	}

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Clear empties all lines
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	util.CartLines.Set(0)
}

// Lines returns a copy of the current lines in insertion order
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// ComputeTotals recomputes subtotal, tax and total from the current lines
func (c *Cart) ComputeTotals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	var subtotal float64
	for i := range c.lines {
		subtotal += c.lines[i].Product.Price * float64(c.lines[i].Quantity)
	}

	tax := subtotal * c.taxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// RefreshProduct replaces the snapshot on the line holding this product,
// leaving its quantity unchanged. Called by the catalog when a product in
// the cart is updated; this is the only time a snapshot changes.
func (c *Cart) RefreshProduct(product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Product = product
			return
		}
	}
}

// DropProduct removes the line for a product deleted from the catalog, so a
// deleted product cannot remain purchasable mid-cart.
func (c *Cart) DropProduct(productID int64) {
	c.RemoveItem(productID)
}
