package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartTotals(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{UnitPrice: decimal.NewFromInt(1299), Quantity: 2},
			{UnitPrice: decimal.NewFromFloat(499.50), Quantity: 1},
		},
	}

	assert.True(t, decimal.NewFromFloat(3097.50).Equal(cart.Subtotal()))
	assert.Equal(t, 3, cart.ItemCount())
}

func TestEmptyCartTotals(t *testing.T) {
	cart := &Cart{}

	assert.True(t, cart.Subtotal().IsZero())
	assert.Equal(t, 0, cart.ItemCount())
}
