package ledger

import (
	"fmt"
	"sync"

	"pizza-pos/internal/models"
	"pizza-pos/internal/store"
)

// Ledger is the append-only history of committed orders, most recent first.
// Orders are never updated or deleted once appended.
type Ledger struct {
	mu     sync.Mutex
	orders []models.Order
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{}
}

// Seed replaces the history with orders loaded from the active source,
// which already returns them most recent first.
func (l *Ledger) Seed(orders []models.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = make([]models.Order, len(orders))
	copy(l.orders, orders)
}

// Append inserts a committed order at the head of the history
func (l *Ledger) Append(order models.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = append([]models.Order{order}, l.orders...)
}

// FindByID returns the matching order, or a wrapped store.ErrNotFound
func (l *Ledger) FindByID(id int64) (*models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == id {
			order := l.orders[i]
			return &order, nil
		}
	}
	return nil, fmt.Errorf("order %d: %w", id, store.ErrNotFound)
}

// List returns a copy of the history, most recent first
func (l *Ledger) List() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len returns the number of orders in the history
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}
