package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateHolidayRequest - admin request to close the store on a day
type CreateHolidayRequest struct {
	Name     string `json:"name"`
	Date     string `json:"date"` // YYYY-MM-DD
	Reason   string `json:"reason"`
	Category string `json:"category"`
}

func (r CreateHolidayRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Holiday name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Date,
			validation.Required.Error("Date is required"),
			validation.Date("2006-01-02").Error("Date must be YYYY-MM-DD"),
		),
		validation.Field(&r.Reason,
			validation.Required.Error("Reason is required"),
			validation.Length(2, 255),
		),
		validation.Field(&r.Category,
			validation.In(HolidayCategoryStore, HolidayCategoryMaintenance, HolidayCategoryOther),
		),
	)
}

// ParsedDate returns the request date as a calendar day
func (r CreateHolidayRequest) ParsedDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.Date)
}
