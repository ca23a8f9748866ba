package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CheckoutRequest - place an order from the current cart
type CheckoutRequest struct {
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	Shipping      ShippingDetails `json:"shipping"`
	PromoCode     string          `json:"promo_code,omitempty"`
}

func (r CheckoutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerName,
			validation.Required.Error("Customer name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.CustomerEmail,
			validation.Required.Error("Customer email is required"),
			is.Email.Error("Invalid email address"),
		),
		validation.Field(&r.Shipping),
	)
}

func (d ShippingDetails) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.FullName, validation.Required.Error("Recipient name is required")),
		validation.Field(&d.Address, validation.Required.Error("Address is required")),
		validation.Field(&d.City, validation.Required.Error("City is required")),
		validation.Field(&d.ZipCode, validation.Required.Error("Zip code is required")),
		validation.Field(&d.Phone, validation.Required.Error("Phone is required")),
		validation.Field(&d.DeliveryDate,
			validation.Required.Error("Delivery date is required"),
			validation.Date("2006-01-02").Error("delivery_date must be YYYY-MM-DD"),
		),
		validation.Field(&d.TimeSlot, validation.Required.Error("Time slot is required")),
	)
}

// UpdateStatusRequest - admin/vendor status change
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required.Error("Status is required")),
	)
}

// TrackingView is the public tracking response
type TrackingView struct {
	Order   *Order         `json:"order"`
	History []StatusChange `json:"history"`
}
