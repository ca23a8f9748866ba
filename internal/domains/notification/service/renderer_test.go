package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		amount   string
		want     string
	}{
		{"rupee symbol", "INR", "2499", "₹2,499"},
		{"lowercase currency code", "inr", "2499", "₹2,499"},
		{"dollar", "USD", "59.99", "$59.99"},
		{"euro", "EUR", "100", "€100"},
		{"pound", "GBP", "1250.50", "£1,250.50"},
		{"unknown currency keeps the code", "AUD", "75", "AUD 75"},
		{"whole amounts drop the decimals", "INR", "1500.00", "₹1,500"},
		{"cents are kept", "INR", "1500.25", "₹1,500.25"},
		{"large amount groups every three digits", "INR", "1234567.89", "₹1,234,567.89"},
		{"small amount has no separator", "INR", "999", "₹999"},
		{"zero", "INR", "0", "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, FormatAmount(tt.currency, amount))
		})
	}
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "Saturday, December 20, 2025", FormatLongDate("2025-12-20"))
	// unparseable input passes through untouched
	assert.Equal(t, "soonish", FormatLongDate("soonish"))
	assert.Equal(t, "", FormatLongDate(""))
}

func TestRenderEmail(t *testing.T) {
	subject, htmlBody, textBody := RenderEmail(sampleOrder())

	assert.Equal(t, "Order Confirmed - FL-20251220-4F9A1C", subject)
	assert.Contains(t, htmlBody, "Red Rose Bouquet")
	assert.Contains(t, htmlBody, "₹2,499")
	assert.Contains(t, htmlBody, "Saturday, December 20, 2025")
	assert.Contains(t, textBody, "FL-20251220-4F9A1C")
	assert.Contains(t, textBody, "Red Rose Bouquet")
}

func TestRenderSMS(t *testing.T) {
	sms := RenderSMS(sampleOrder())

	assert.Contains(t, sms, "Ravi Patel")
	assert.Contains(t, sms, "FL-20251220-4F9A1C")
	assert.Contains(t, sms, "₹2,499")
	assert.Contains(t, sms, "Saturday, December 20, 2025")
	assert.Contains(t, sms, "Morning (9:00 AM - 12:00 PM)")
}

func TestRenderWhatsApp(t *testing.T) {
	msg := RenderWhatsApp(sampleOrder())

	assert.Contains(t, msg, "*Spring Blossoms - Order Confirmed*")
	assert.Contains(t, msg, "*Order:* FL-20251220-4F9A1C")
	assert.Contains(t, msg, "Red Rose Bouquet x1")
	assert.Contains(t, msg, "*Total:* ₹2,499")
	assert.Contains(t, msg, "Mumbai")
}

func TestRenderStatusEmail(t *testing.T) {
	data := sampleOrder()

	t.Run("known status", func(t *testing.T) {
		subject, _, textBody := RenderStatusEmail(data, "out_for_delivery")
		assert.Equal(t, "Order FL-20251220-4F9A1C - out for delivery", subject)
		assert.Contains(t, textBody, "out for delivery")
	})

	t.Run("unknown status gets a generic message", func(t *testing.T) {
		_, _, textBody := RenderStatusEmail(data, "archived")
		assert.Contains(t, textBody, "Your order status is now: archived")
	})
}

func TestRecipientPhoneFallback(t *testing.T) {
	data := sampleOrder()
	assert.Equal(t, "+919800000002", data.RecipientPhone())

	data.Customer.Phone = ""
	assert.Equal(t, "+919800000001", data.RecipientPhone())

	data.Order.ShippingDetails.Phone = ""
	assert.Equal(t, "", data.RecipientPhone())

	// numbers pass through exactly as entered
	data.Customer.Phone = "98000 00003"
	assert.Equal(t, "98000 00003", data.RecipientPhone())
}
