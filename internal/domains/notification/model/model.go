package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// CHANNEL CONSTANTS
// =====================================================
const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

// Channels lists every dispatch channel in fan-out order
func Channels() []string {
	return []string{ChannelEmail, ChannelSMS, ChannelWhatsApp}
}

// =====================================================
// ORDER PROJECTION (read-only input)
// =====================================================

// OrderData is the read-only projection handed to the dispatcher after order
// persistence. The dispatcher never mutates or stores it.
type OrderData struct {
	Order    OrderSummary `json:"order"`
	Customer Customer     `json:"customer"`
	Items    []OrderItem  `json:"items"`
}

type OrderSummary struct {
	OrderNumber     string          `json:"order_number"`
	CreatedAt       time.Time       `json:"created_at"`
	Currency        string          `json:"currency"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingDetails ShippingDetails `json:"shipping_details"`
}

type ShippingDetails struct {
	FullName     string `json:"full_name"`
	Address      string `json:"address"`
	Apartment    string `json:"apartment,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
	Phone        string `json:"phone"`
	DeliveryDate string `json:"delivery_date"`
	TimeSlot     string `json:"time_slot"`
	Notes        string `json:"notes,omitempty"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type OrderItem struct {
	Product    string          `json:"product"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

// RecipientPhone picks the customer phone, falling back to the shipping phone.
// The number is used verbatim; no country-code normalization is applied.
func (d *OrderData) RecipientPhone() string {
	if d.Customer.Phone != "" {
		return d.Customer.Phone
	}
	return d.Order.ShippingDetails.Phone
}

// =====================================================
// DISPATCH RESULTS
// =====================================================

// SendResult is the structured outcome of one channel's send attempt.
// Failures are data, not errors: the dispatcher never throws.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DispatchResult aggregates the three channel outcomes of one dispatch
type DispatchResult struct {
	Email    SendResult `json:"email"`
	SMS      SendResult `json:"sms"`
	WhatsApp SendResult `json:"whatsapp"`
}

// SuccessCount returns how many of the three channels succeeded
func (r DispatchResult) SuccessCount() int {
	count := 0
	for _, res := range []SendResult{r.Email, r.SMS, r.WhatsApp} {
		if res.Success {
			count++
		}
	}
	return count
}

// ByChannel returns the result for a named channel
func (r DispatchResult) ByChannel(channel string) SendResult {
	switch channel {
	case ChannelEmail:
		return r.Email
	case ChannelSMS:
		return r.SMS
	case ChannelWhatsApp:
		return r.WhatsApp
	}
	return SendResult{}
}

// =====================================================
// DELIVERY LOG (persisted per-channel attempts)
// =====================================================

const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"

	MaxDeliveryAttempts = 3
)

type DeliveryLog struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Channel     string    `json:"channel"`
	Recipient   string    `json:"recipient"`
	Status      string    `json:"status"`
	MessageID   *string   `json:"message_id,omitempty"`
	Error       *string   `json:"error,omitempty"`
	Attempt     int       `json:"attempt"`
	Payload     []byte    `json:"-"` // marshaled OrderData, kept for retries
	CreatedAt   time.Time `json:"created_at"`
}
