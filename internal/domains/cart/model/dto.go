package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const maxItemQuantity = 50

// AddItemRequest - add a product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID,
			validation.Required.Error("product_id is required"),
			is.UUID.Error("product_id must be a UUID"),
		),
		validation.Field(&r.Quantity,
			validation.Required.Error("quantity is required"),
			validation.Min(1).Error("quantity must be at least 1"),
			validation.Max(maxItemQuantity).Error("quantity is too large"),
		),
	)
}

// UpdateItemRequest - change a line's quantity, 0 removes it
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity,
			validation.Min(0).Error("quantity cannot be negative"),
			validation.Max(maxItemQuantity).Error("quantity is too large"),
		),
	)
}
