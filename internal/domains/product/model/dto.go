package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateProductRequest - vendor/admin request to add a product
type CreateProductRequest struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price"`
	ComparePrice *decimal.Decimal `json:"compare_price,omitempty"`
	Currency     string           `json:"currency"`
	Category     string           `json:"category"`
	Occasions    []string         `json:"occasions"`
	Images       []string         `json:"images"`
	Stock        int              `json:"stock"`
	IsFeatured   bool             `json:"is_featured"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Product name is required"),
			validation.Length(2, 200),
		),
		validation.Field(&r.Price,
			validation.Required.Error("Price is required"),
			validation.Min(decimal.New(1, -2)).Error("Price must be positive"),
		),
		validation.Field(&r.Currency,
			validation.Length(3, 3).Error("Currency must be a 3-letter code"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("Category is required"),
		),
		validation.Field(&r.Stock,
			validation.Min(0).Error("Stock cannot be negative"),
		),
	)
}

// UpdateProductRequest - partial update, nil fields are left untouched
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	ComparePrice *decimal.Decimal `json:"compare_price,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Occasions    []string         `json:"occasions,omitempty"`
	Images       []string         `json:"images,omitempty"`
	Stock        *int             `json:"stock,omitempty"`
	IsFeatured   *bool            `json:"is_featured,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			validation.Length(2, 200),
		),
		validation.Field(&r.Category,
			validation.NilOrNotEmpty,
		),
	)
}
