package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"florist-backend/internal/domains/promotion/model"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestCalculatePercentageDiscount(t *testing.T) {
	calc := NewDiscountCalculator()

	promo := &model.Promotion{
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: d("10"),
	}

	assert.True(t, d("250").Equal(calc.Calculate(promo, d("2500"))))
	assert.True(t, d("99.90").Equal(calc.Calculate(promo, d("999"))))
	assert.True(t, decimal.Zero.Equal(calc.Calculate(promo, decimal.Zero)))
}

func TestCalculatePercentageWithCap(t *testing.T) {
	calc := NewDiscountCalculator()

	maxDiscount := d("500")
	promo := &model.Promotion{
		DiscountType:      model.DiscountTypePercentage,
		DiscountValue:     d("20"),
		MaxDiscountAmount: &maxDiscount,
	}

	// 20% of 10000 is 2000, capped at 500
	assert.True(t, d("500").Equal(calc.Calculate(promo, d("10000"))))
	// 20% of 1000 is 200, under the cap
	assert.True(t, d("200").Equal(calc.Calculate(promo, d("1000"))))
}

func TestCalculateFixedDiscount(t *testing.T) {
	calc := NewDiscountCalculator()

	promo := &model.Promotion{
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: d("300"),
	}

	assert.True(t, d("300").Equal(calc.Calculate(promo, d("2500"))))
	// fixed discount never exceeds the subtotal
	assert.True(t, d("150").Equal(calc.Calculate(promo, d("150"))))
}

func TestCalculateUnknownTypeIsZero(t *testing.T) {
	calc := NewDiscountCalculator()

	promo := &model.Promotion{
		DiscountType:  "loyalty_points",
		DiscountValue: d("300"),
	}

	assert.True(t, decimal.Zero.Equal(calc.Calculate(promo, d("2500"))))
}

func TestCalculateRoundsToTwoPlaces(t *testing.T) {
	calc := NewDiscountCalculator()

	promo := &model.Promotion{
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: d("33.33"),
	}

	// 33.33% of 999.99 = 333.296667, rounded to 333.30
	assert.True(t, d("333.30").Equal(calc.Calculate(promo, d("999.99"))))
}
