package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type VendorStatus string

const (
	StatusPending   VendorStatus = "pending"
	StatusApproved  VendorStatus = "approved"
	StatusSuspended VendorStatus = "suspended"
)

type Vendor struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	StoreName string       `json:"store_name"`
	Status    VendorStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CanSell reports whether the vendor may list products
func (v *Vendor) CanSell() bool {
	return v.Status == StatusApproved
}

var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrDuplicateEmail = errors.New("vendor email already registered")
)

// RegisterVendorRequest - public vendor application
type RegisterVendorRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	StoreName string `json:"store_name"`
}

func (r RegisterVendorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email address"),
		),
		validation.Field(&r.StoreName,
			validation.Required.Error("Store name is required"),
			validation.Length(2, 100),
		),
	)
}
