package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"pizza-pos/internal/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Store is the connected-mode Source backed by Postgres
type Store struct {
	db *sqlx.DB
}

// NewStore connects to Postgres and returns the connected-mode source
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// ListProducts retrieves all products in insertion order
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.SelectContext(ctx, &products, "SELECT * FROM products ORDER BY id")
	return products, err
}

// CreateProduct inserts a product and returns it with its assigned id
func (s *Store) CreateProduct(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	product := models.Product{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Image:       draft.Image,
	}

	query := `
		INSERT INTO products (name, description, price, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := s.db.GetContext(ctx, &product.ID, query,
		draft.Name, draft.Description, draft.Price, draft.Image)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return &product, nil
}

// UpdateProduct updates a product in place
func (s *Store) UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET name = $1, description = $2, price = $3, image = $4 WHERE id = $5",
		product.Name, product.Description, product.Price, product.Image, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("product %d: %w", product.ID, ErrNotFound)
	}
	return &product, nil
}

// DeleteProduct removes a product
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return nil
}

// orderRow maps the orders table; items are stored as a JSON document so an
// order keeps its product snapshots exactly as frozen at checkout.
type orderRow struct {
	ID              int64     `db:"id"`
	CreatedAt       time.Time `db:"created_at"`
	Buyer           string    `db:"buyer"`
	Items           []byte    `db:"items"`
	PaymentMethod   string    `db:"payment_method"`
	DeliveryService string    `db:"delivery_service"`
	CouponCode      string    `db:"coupon_code"`
	Subtotal        float64   `db:"subtotal"`
	Tax             float64   `db:"tax"`
	Total           float64   `db:"total"`
}

func (r *orderRow) toOrder() (*models.Order, error) {
	order := models.Order{
		ID:              r.ID,
		CreatedAt:       r.CreatedAt,
		Buyer:           r.Buyer,
		PaymentMethod:   r.PaymentMethod,
		DeliveryService: r.DeliveryService,
		CouponCode:      r.CouponCode,
		Subtotal:        r.Subtotal,
		Tax:             r.Tax,
		Total:           r.Total,
	}
	if err := json.Unmarshal(r.Items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}
	return &order, nil
}

// ListOrders retrieves all orders, most recent first
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var rows []orderRow
	err := s.db.SelectContext(ctx, &rows, "SELECT * FROM orders ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(rows))
	for i := range rows {
		order, err := rows[i].toOrder()
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// CreateOrder persists an order draft; the database assigns id and timestamp
func (s *Store) CreateOrder(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	items, err := json.Marshal(draft.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	order := models.Order{
		Buyer:           draft.Buyer,
		Items:           draft.Items,
		PaymentMethod:   draft.PaymentMethod,
		DeliveryService: draft.DeliveryService,
		CouponCode:      draft.CouponCode,
		Subtotal:        draft.Subtotal,
		Tax:             draft.Tax,
		Total:           draft.Total,
	}

	query := `
		INSERT INTO orders (buyer, items, payment_method, delivery_service, coupon_code, subtotal, tax, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	row := s.db.QueryRowxContext(ctx, query,
		draft.Buyer, items, draft.PaymentMethod, draft.DeliveryService,
		draft.CouponCode, draft.Subtotal, draft.Tax, draft.Total)
	if err := row.Scan(&order.ID, &order.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	return &order, nil
}

// GetOrderByID retrieves an order by id
func (s *Store) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var row orderRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM orders WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return row.toOrder()
}

// ListCoupons retrieves all coupons ordered by code
func (s *Store) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	coupons := []models.Coupon{}
	err := s.db.SelectContext(ctx, &coupons, "SELECT * FROM coupons ORDER BY code")
	return coupons, err
}

// CreateCoupon inserts a coupon and returns it with its assigned id
func (s *Store) CreateCoupon(ctx context.Context, draft models.CouponDraft) (*models.Coupon, error) {
	coupon := models.Coupon{
		Code:           draft.Code,
		DiscountPct:    draft.DiscountPct,
		ExpirationDate: draft.ExpirationDate,
	}

	query := `
		INSERT INTO coupons (code, discount_pct, expiration_date)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := s.db.GetContext(ctx, &coupon.ID, query,
		draft.Code, draft.DiscountPct, draft.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("failed to insert coupon: %w", err)
	}
	return &coupon, nil
}
