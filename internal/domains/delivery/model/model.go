package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// =====================================================
// HOLIDAY TYPE / CATEGORY CONSTANTS
// =====================================================
const (
	HolidayTypeFixed   = "fixed"
	HolidayTypeDynamic = "dynamic"
	HolidayTypeStore   = "store"

	HolidayCategoryNational    = "national"
	HolidayCategoryReligious   = "religious"
	HolidayCategoryStore       = "store"
	HolidayCategoryMaintenance = "maintenance"
	HolidayCategoryOther       = "other"
)

// Holiday is a calendar day on which delivery booking is disabled.
// Only the calendar day of Date matters; time-of-day is ignored.
type Holiday struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Date           time.Time `json:"date"`
	Reason         string    `json:"reason"`
	Type           string    `json:"type"`
	Category       string    `json:"category"`
	IsActive       bool      `json:"is_active"`
	Recurring      bool      `json:"recurring"`
	RecurringYears []int     `json:"recurring_years,omitempty"`
}

// MatchesDay reports whether the holiday falls on the same calendar day as t
func (h *Holiday) MatchesDay(t time.Time) bool {
	hy, hm, hd := h.Date.Date()
	ty, tm, td := t.Date()
	return hy == ty && hm == tm && hd == td
}

// =====================================================
// DELIVERY SLOTS
// =====================================================

// Well-known slot IDs. The notice-period rules key off these.
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotMidnight  = "midnight"
)

// Slot is a named delivery time window. StartHour/StartMinute carry the
// structured 24-hour start time; Display is only for rendering, never parsed.
type Slot struct {
	ID          string           `json:"id"`
	Label       string           `json:"label"`
	Display     string           `json:"time"` // e.g. "9:00 AM - 12:00 PM"
	StartHour   int              `json:"start_hour"`
	StartMinute int              `json:"start_minute"`
	Available   bool             `json:"available"`
	Price       *decimal.Decimal `json:"price,omitempty"` // optional surcharge
}

// DefaultSlots returns the static slot catalog used by the storefront
func DefaultSlots() []Slot {
	midnightFee := decimal.NewFromInt(100)
	return []Slot{
		{ID: SlotMorning, Label: "Morning", Display: "9:00 AM - 12:00 PM", StartHour: 9, StartMinute: 0, Available: true},
		{ID: SlotAfternoon, Label: "Afternoon", Display: "1:00 PM - 4:00 PM", StartHour: 13, StartMinute: 0, Available: true},
		{ID: SlotEvening, Label: "Evening", Display: "5:00 PM - 8:00 PM", StartHour: 17, StartMinute: 0, Available: true},
		{ID: SlotMidnight, Label: "Midnight", Display: "10:00 PM - 12:00 AM", StartHour: 22, StartMinute: 0, Available: true, Price: &midnightFee},
	}
}

// SlotByID looks up a slot in the static catalog
func SlotByID(id string) (Slot, bool) {
	for _, s := range DefaultSlots() {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

// =====================================================
// AVAILABILITY RESULTS
// =====================================================

// DateAvailability is the computed decision for one candidate date
type DateAvailability struct {
	Date          string   `json:"date"`
	DisplayDate   string   `json:"display_date"`
	Disabled      bool     `json:"disabled"`
	Reason        string   `json:"reason,omitempty"`
	IsToday       bool     `json:"is_today"`
	IsHoliday     bool     `json:"is_holiday"`
	Holiday       *Holiday `json:"holiday,omitempty"`
	SameDayNotice string   `json:"same_day_notice,omitempty"`
}

// SlotAvailability pairs a slot with its computed availability for a date
type SlotAvailability struct {
	Slot      Slot   `json:"slot"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// =====================================================
// REMOTE HOLIDAY SERVICE CONTRACT
// =====================================================

// HolidayServiceResponse mirrors the remote holiday service payload.
// The data is authoritative only when Success is true and Data is non-empty.
type HolidayServiceResponse struct {
	Success bool      `json:"success"`
	Data    []Holiday `json:"data"`
}
