package models

import "time"

// Product represents a sellable item in the catalog
type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Image       string  `db:"image" json:"image,omitempty"`
}

// ProductDraft carries the fields of a product before an identifier is assigned
type ProductDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

// CartLine is one product in the working cart. The embedded product is a
// snapshot frozen at add time; it only changes when the catalog explicitly
// notifies the cart of an update to that product.
type CartLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// OrderItem is a cart line frozen into a committed order
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// Order represents a completed order. Financial fields and items are
// immutable once the order is created.
type Order struct {
	ID              int64       `db:"id" json:"id"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	Buyer           string      `db:"buyer" json:"buyer"`
	Items           []OrderItem `json:"items"`
	PaymentMethod   string      `db:"payment_method" json:"payment_method"`
	DeliveryService string      `db:"delivery_service" json:"delivery_service"`
	CouponCode      string      `db:"coupon_code" json:"coupon_code,omitempty"`
	Subtotal        float64     `db:"subtotal" json:"subtotal"`
	Tax             float64     `db:"tax" json:"tax"`
	Total           float64     `db:"total" json:"total"`
}

// OrderDraft is an order before the active source assigns id and timestamp
type OrderDraft struct {
	Buyer           string      `json:"buyer"`
	Items           []OrderItem `json:"items"`
	PaymentMethod   string      `json:"payment_method"`
	DeliveryService string      `json:"delivery_service"`
	CouponCode      string      `json:"coupon_code,omitempty"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
}

// Coupon represents a discount code
type Coupon struct {
	ID             int64  `db:"id" json:"id"`
	Code           string `db:"code" json:"code"`
	DiscountPct    int    `db:"discount_pct" json:"discount_pct"`
	ExpirationDate string `db:"expiration_date" json:"expiration_date"`
}

// CouponDraft carries coupon fields before an identifier is assigned
type CouponDraft struct {
	Code           string `json:"code"`
	DiscountPct    int    `json:"discount_pct"`
	ExpirationDate string `json:"expiration_date"`
}

// Defaults applied at checkout when the operator leaves a field blank
const (
	DefaultBuyer           = "Walk-in Customer"
	DefaultPaymentMethod   = "Cash"
	DefaultDeliveryService = "None"
)

// Product field limits enforced by catalog validation
const (
	MaxNameLength        = 64
	MaxDescriptionLength = 128
)
