package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to OrderStatus
	}{
		{StatusPlaced, StatusConfirmed},
		{StatusPlaced, StatusCancelled},
		{StatusConfirmed, StatusProcessing},
		{StatusConfirmed, StatusCancelled},
		{StatusProcessing, StatusOutForDelivery},
		{StatusProcessing, StatusCancelled},
		{StatusOutForDelivery, StatusDelivered},
	}
	for _, tt := range allowed {
		assert.True(t, tt.from.CanTransitionTo(tt.to), "%s -> %s should be allowed", tt.from, tt.to)
	}

	denied := []struct {
		from, to OrderStatus
	}{
		{StatusPlaced, StatusProcessing},
		{StatusPlaced, StatusDelivered},
		{StatusConfirmed, StatusPlaced},
		{StatusOutForDelivery, StatusCancelled},
		{StatusDelivered, StatusCancelled},
		{StatusCancelled, StatusPlaced},
		{StatusDelivered, StatusDelivered},
	}
	for _, tt := range denied {
		assert.False(t, tt.from.CanTransitionTo(tt.to), "%s -> %s should be denied", tt.from, tt.to)
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusPlaced, StatusConfirmed, StatusProcessing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled,
	} {
		assert.True(t, s.IsValid())
	}

	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
