package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// DISCOUNT TYPE CONSTANTS
// =====================================================

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// =====================================================
// ENTITY: Promotion
// =====================================================
type Promotion struct {
	ID                uuid.UUID        `json:"id"`
	Code              string           `json:"code"`
	Description       string           `json:"description"`
	DiscountType      DiscountType     `json:"discount_type"`
	DiscountValue     decimal.Decimal  `json:"discount_value"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount,omitempty"`
	MinOrderAmount    decimal.Decimal  `json:"min_order_amount"`
	StartsAt          time.Time        `json:"starts_at"`
	ExpiresAt         time.Time        `json:"expires_at"`
	MaxUses           *int             `json:"max_uses,omitempty"`
	CurrentUses       int              `json:"current_uses"`
	IsActive          bool             `json:"is_active"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// IsWithinWindow reports whether the promotion is inside its validity period
func (p *Promotion) IsWithinWindow(now time.Time) bool {
	return !now.Before(p.StartsAt) && !now.After(p.ExpiresAt)
}

// HasUsesLeft reports whether the global usage limit allows another use
func (p *Promotion) HasUsesLeft() bool {
	return p.MaxUses == nil || p.CurrentUses < *p.MaxUses
}

// ValidationResult is returned to the storefront when a code is checked
type ValidationResult struct {
	IsValid        bool            `json:"is_valid"`
	Reason         string          `json:"reason,omitempty"`
	Code           string          `json:"code,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalTotal     decimal.Decimal `json:"final_total"`
}
