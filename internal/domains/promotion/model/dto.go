package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// ValidatePromotionRequest - storefront request to check a promo code
type ValidatePromotionRequest struct {
	Code     string          `json:"code"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (r ValidatePromotionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.Required.Error("Promo code cannot be empty"),
			validation.Length(3, 50).Error("Promo code must be 3-50 characters"),
		),
		validation.Field(&r.Subtotal,
			validation.Min(decimal.Zero).Error("Subtotal must be >= 0"),
		),
	)
}

// NormalizeCode uppercases and trims the code
func (r *ValidatePromotionRequest) NormalizeCode() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
}

// -------------------------------------------------------------------
// ADMIN REQUESTS
// -------------------------------------------------------------------

// CreatePromotionRequest - admin request to create a promotion
type CreatePromotionRequest struct {
	Code              string           `json:"code"`
	Description       string           `json:"description"`
	DiscountType      string           `json:"discount_type"`
	DiscountValue     decimal.Decimal  `json:"discount_value"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount,omitempty"`
	MinOrderAmount    decimal.Decimal  `json:"min_order_amount"`
	StartsAt          string           `json:"starts_at"`   // YYYY-MM-DD
	ExpiresAt         string           `json:"expires_at"`  // YYYY-MM-DD
	MaxUses           *int             `json:"max_uses,omitempty"`
}

func (r CreatePromotionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.Required.Error("Code is required"),
			validation.Length(3, 50),
		),
		validation.Field(&r.DiscountType,
			validation.Required,
			validation.In(string(DiscountTypePercentage), string(DiscountTypeFixed)).Error("discount_type must be percentage or fixed"),
		),
		validation.Field(&r.DiscountValue,
			validation.Required.Error("Discount value is required"),
			validation.Min(decimal.NewFromInt(0).Add(decimal.New(1, -2))).Error("Discount value must be positive"),
		),
		validation.Field(&r.StartsAt,
			validation.Required,
			validation.Date("2006-01-02").Error("starts_at must be YYYY-MM-DD"),
		),
		validation.Field(&r.ExpiresAt,
			validation.Required,
			validation.Date("2006-01-02").Error("expires_at must be YYYY-MM-DD"),
		),
	)
}
