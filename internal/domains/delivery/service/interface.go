package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"florist-backend/internal/domains/delivery/model"
)

// HolidaySource provides the holiday list for a year. Implemented by the
// remote holiday client; stubbed in tests.
type HolidaySource interface {
	FetchYear(ctx context.Context, year int) ([]model.Holiday, error)
}

type ServiceInterface interface {
	// GetHolidays returns the effective holiday set for a year. Never fails:
	// remote errors and empty responses are replaced by the generated fallback.
	GetHolidays(ctx context.Context, year int) []model.Holiday

	// CheckDate computes the availability decision for one candidate date
	CheckDate(ctx context.Context, date time.Time) model.DateAvailability

	// ListSlots evaluates the slot catalog against a date (zero date allowed)
	ListSlots(ctx context.Context, date time.Time) []model.SlotAvailability

	// ValidateBooking guards checkout: returns the slot (for its surcharge)
	// or an error naming why the date/slot combination is not bookable
	ValidateBooking(ctx context.Context, date time.Time, slotID string) (model.Slot, error)

	// Admin store closures
	CreateStoreHoliday(ctx context.Context, req model.CreateHolidayRequest) (*model.Holiday, error)
	DeleteStoreHoliday(ctx context.Context, id uuid.UUID) error

	// RefreshHolidayCache re-fetches and re-caches a year (background job)
	RefreshHolidayCache(ctx context.Context, year int) error
}
