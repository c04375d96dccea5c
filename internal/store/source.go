package store

import (
	"context"
	"errors"

	"pizza-pos/internal/models"
)

// ErrNotFound is returned when a lookup or mutation targets an identifier
// the active source does not know.
var ErrNotFound = errors.New("not found")

// Source is the data boundary every catalog and order operation routes
// through. The connected implementation is backed by Postgres; the fallback
// implementation serves an in-process sample data set. The implementation is
// chosen once at startup, so callers stay mode-agnostic.
type Source interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, draft models.ProductDraft) (*models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error)

	ListCoupons(ctx context.Context) ([]models.Coupon, error)
	CreateCoupon(ctx context.Context, draft models.CouponDraft) (*models.Coupon, error)
}
