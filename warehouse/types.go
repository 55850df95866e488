package warehouse

import (
	"time"
)

// Address represents a physical or billing/shipping address.
//
//merge:generate
type Address struct {
	ID         uint      `gorm:"primaryKey"  json:"id"         merge:"final"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"  merge:"final"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Product represents a sellable item in the store.
//
//merge:generate
type Product struct {
	ID          uint    `gorm:"primaryKey"  json:"id"  merge:"final"`
	SKU         string  `gorm:"uniqueIndex" json:"sku" merge:"final"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"` // in cents (minor currency unit)
	Stock       int     `json:"stock" merge:"skip"` // owned by inventory sync
	IsActive    bool    `json:"is_active"`
	Weight      float64 `json:"weight"` // in grams, useful for shipping

	Tags map[string]string `json:"tags,omitempty" merge:"omitnull"`

	CreatedAt time.Time `json:"created_at" merge:"final"`
	UpdatedAt time.Time `json:"updated_at"`
}
