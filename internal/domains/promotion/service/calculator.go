package service

import (
	"github.com/shopspring/decimal"

	"florist-backend/internal/domains/promotion/model"
)

// DiscountCalculator holds the discount math, separate from validation so it
// can be reused by cart preview and order checkout without re-checking rules.
type DiscountCalculator struct{}

func NewDiscountCalculator() *DiscountCalculator {
	return &DiscountCalculator{}
}

// Calculate computes the discount amount for a promotion against a subtotal.
//
// Percentage: discount = subtotal * (value / 100), capped at
// max_discount_amount when set. Fixed: discount = value, capped at the
// subtotal so an order can never go negative. Rounded to 2 decimal places.
func (c *DiscountCalculator) Calculate(promo *model.Promotion, subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal

	switch promo.DiscountType {
	case model.DiscountTypePercentage:
		discount = subtotal.Mul(promo.DiscountValue).Div(decimal.NewFromInt(100))

		if promo.MaxDiscountAmount != nil {
			if discount.GreaterThan(*promo.MaxDiscountAmount) {
				discount = *promo.MaxDiscountAmount
			}
		}

	case model.DiscountTypeFixed:
		discount = promo.DiscountValue

		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}

	default:
		return decimal.Zero
	}

	return discount.Round(2)
}

// CalculateWithBreakdown returns the step-by-step detail (used for logging)
func (c *DiscountCalculator) CalculateWithBreakdown(promo *model.Promotion, subtotal decimal.Decimal) DiscountBreakdown {
	breakdown := DiscountBreakdown{
		Subtotal:     subtotal,
		DiscountType: string(promo.DiscountType),
	}

	switch promo.DiscountType {
	case model.DiscountTypePercentage:
		rawDiscount := subtotal.Mul(promo.DiscountValue).Div(decimal.NewFromInt(100))
		breakdown.RawDiscount = rawDiscount

		if promo.MaxDiscountAmount != nil && rawDiscount.GreaterThan(*promo.MaxDiscountAmount) {
			breakdown.FinalDiscount = *promo.MaxDiscountAmount
			breakdown.Capped = true
			breakdown.CapReason = "max_discount_amount"
		} else {
			breakdown.FinalDiscount = rawDiscount
		}

	case model.DiscountTypeFixed:
		breakdown.RawDiscount = promo.DiscountValue

		if promo.DiscountValue.GreaterThan(subtotal) {
			breakdown.FinalDiscount = subtotal
			breakdown.Capped = true
			breakdown.CapReason = "exceeds_subtotal"
		} else {
			breakdown.FinalDiscount = promo.DiscountValue
		}
	}

	breakdown.FinalDiscount = breakdown.FinalDiscount.Round(2)
	return breakdown
}

// DiscountBreakdown carries the calculation detail
type DiscountBreakdown struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	DiscountType  string          `json:"discount_type"`
	RawDiscount   decimal.Decimal `json:"raw_discount"`
	FinalDiscount decimal.Decimal `json:"final_discount"`
	Capped        bool            `json:"capped"`
	CapReason     string          `json:"cap_reason,omitempty"`
}
