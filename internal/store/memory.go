package store

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"pizza-pos/internal/models"
)

// MemStore is the fallback Source used when no database is reachable. It is
// the source of truth for the session: mutations and reads hit the same
// structures, so there is no reload step after an edit.
type MemStore struct {
	mu       sync.Mutex
	products []models.Product
	orders   []models.Order
	coupons  []models.Coupon
}

// NewMemStore returns a fallback source seeded with the sample catalog
func NewMemStore() *MemStore {
	return &MemStore{products: SampleProducts()}
}

// SampleProducts is the seed catalog served when no backend is reachable,
// so the terminal never starts with an empty menu.
func SampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Margherita", Description: "Classic tomato and mozzarella", Price: 12.99, Image: "🍕"},
		{ID: 2, Name: "Pepperoni", Description: "Spicy pepperoni with cheese", Price: 14.99, Image: "🍕"},
		{ID: 3, Name: "Hawaiian", Description: "Ham and pineapple", Price: 13.99, Image: "🍕"},
		{ID: 4, Name: "Supreme", Description: "All toppings included", Price: 16.99, Image: "🍕"},
		{ID: 5, Name: "BBQ Chicken", Description: "BBQ sauce with chicken", Price: 15.99, Image: "🍕"},
		{ID: 6, Name: "Veggie Delight", Description: "Fresh vegetables only", Price: 13.99, Image: "🍕"},
	}
}

// opaqueID assigns identifiers in fallback mode. Random rather than
// sequential so fallback ids never look authoritative.
func (m *MemStore) opaqueID() int64 {
	for {
		id := rand.Int63n(1 << 31)
		if id == 0 {
			continue
		}
		if !m.idTaken(id) {
			return id
		}
	}
}

func (m *MemStore) idTaken(id int64) bool {
	for i := range m.products {
		if m.products[i].ID == id {
			return true
		}
	}
	for i := range m.orders {
		if m.orders[i].ID == id {
			return true
		}
	}
	for i := range m.coupons {
		if m.coupons[i].ID == id {
			return true
		}
	}
	return false
}

// ListProducts returns all products in insertion order
func (m *MemStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

// CreateProduct appends a product with a newly assigned opaque id
func (m *MemStore) CreateProduct(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product := models.Product{
		ID:          m.opaqueID(),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Image:       draft.Image,
	}
	m.products = append(m.products, product)
	return &product, nil
}

// UpdateProduct replaces the stored product with the same id
func (m *MemStore) UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID == product.ID {
			m.products[i] = product
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", product.ID, ErrNotFound)
}

// DeleteProduct removes the product with the given id
func (m *MemStore) DeleteProduct(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %d: %w", id, ErrNotFound)
}

// ListOrders returns all orders, most recent first
func (m *MemStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

// CreateOrder assigns id and timestamp to the draft and stores it
func (m *MemStore) CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order := models.Order{
		ID:              m.opaqueID(),
		CreatedAt:       time.Now(),
		Buyer:           draft.Buyer,
		Items:           draft.Items,
		PaymentMethod:   draft.PaymentMethod,
		DeliveryService: draft.DeliveryService,
		CouponCode:      draft.CouponCode,
		Subtotal:        draft.Subtotal,
		Tax:             draft.Tax,
		Total:           draft.Total,
	}
	m.orders = append([]models.Order{order}, m.orders...)
	return &order, nil
}

// ListCoupons returns all coupons in insertion order
func (m *MemStore) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Coupon, len(m.coupons))
	copy(out, m.coupons)
	return out, nil
}

// CreateCoupon appends a coupon with a newly assigned opaque id
func (m *MemStore) CreateCoupon(ctx context.Context, draft models.CouponDraft) (*models.Coupon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	coupon := models.Coupon{
		ID:             m.opaqueID(),
		Code:           draft.Code,
		DiscountPct:    draft.DiscountPct,
		ExpirationDate: draft.ExpirationDate,
	}
	m.coupons = append(m.coupons, coupon)
	return &coupon, nil
}
