package store

import (
	"time"
)

// Customer represents the user placing orders.
//
//merge:generate
type Customer struct {
	ID       int64   `json:"id"        merge:"final"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Address  *string `json:"address"   merge:"omitnull"` // nil means "keep the current address"
	IsActive bool    `json:"is_active"`
}

// Order represents a transaction made by a customer.
//
//merge:generate
type Order struct {
	ID         int64       `json:"id"          merge:"final"`
	CustomerID int64       `json:"customer_id" merge:"final"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"       merge:"omitnull"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
