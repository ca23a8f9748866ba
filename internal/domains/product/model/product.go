package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// ENTITY: Product
// =====================================================
type Product struct {
	ID           uuid.UUID        `json:"id"`
	VendorID     *uuid.UUID       `json:"vendor_id,omitempty"`
	Name         string           `json:"name"`
	Slug         string           `json:"slug"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"compare_price,omitempty"`
	Currency     string           `json:"currency"`
	Category     string           `json:"category"`
	Occasions    []string         `json:"occasions"`
	Images       []string         `json:"images"`
	Stock        int              `json:"stock"`
	IsFeatured   bool             `json:"is_featured"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// InStock reports whether the requested quantity can be fulfilled
func (p *Product) InStock(quantity int) bool {
	return p.Stock >= quantity
}

// ProductFilter - query filters for listing
type ProductFilter struct {
	Category string
	Occasion string
	VendorID *uuid.UUID
	Featured *bool
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
	SortBy   string // price_asc, price_desc, newest
	Limit    int
	Offset   int
}
