package service

import (
	"fmt"
	"time"

	"florist-backend/internal/domains/delivery/model"
)

// Availability rules. A date is disabled when it is in the past, beyond the
// December 31 horizon of the current year, or an active holiday. Same-day
// bookings additionally require a notice period before the slot's start time.
//
// The notice gap is computed on whole hours: slot.StartHour - now.Hour().
// Minutes are deliberately ignored; this coarse policy matches store practice.

const (
	reasonPastDate      = "Cannot select past dates"
	reasonBeyondHorizon = "Delivery not available beyond December 31st"
	reasonUnavailable   = "Unavailable"

	morningNoticeHours  = 5.0
	midnightNoticeHours = 2.0
	defaultNoticeHours  = 0.5

	reasonMorningNotice  = "Need 5+ hours notice"
	reasonMidnightNotice = "Need 2+ hours notice"
	reasonDefaultNotice  = "Need 30+ minutes notice"
)

// IsDateDisabled reports whether a candidate date is closed for booking
func IsDateDisabled(date, now time.Time, holidays []model.Holiday) bool {
	return DateDisabledReason(date, now, holidays) != ""
}

// DateDisabledReason returns the first matching explanation for a disabled
// date, or "" when the date is bookable. Precedence is fixed: past date,
// then horizon, then holiday.
func DateDisabledReason(date, now time.Time, holidays []model.Holiday) string {
	if date.Before(startOfDay(now)) {
		return reasonPastDate
	}

	horizon := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, date.Location())
	if date.After(horizon) {
		return reasonBeyondHorizon
	}

	if h := ActiveHolidayOn(date, holidays); h != nil {
		return h.Reason
	}

	return ""
}

// ActiveHolidayOn returns the first active holiday matching the calendar day
func ActiveHolidayOn(date time.Time, holidays []model.Holiday) *model.Holiday {
	for i := range holidays {
		if holidays[i].IsActive && holidays[i].MatchesDay(date) {
			return &holidays[i]
		}
	}
	return nil
}

// CheckSlot decides whether a slot is bookable for the chosen date.
// A zero date means no date chosen yet: every statically-available slot
// counts as available and no reason is shown.
func CheckSlot(slot model.Slot, date, now time.Time) model.SlotAvailability {
	result := model.SlotAvailability{Slot: slot}

	if !slot.Available {
		result.Reason = reasonUnavailable
		return result
	}

	result.Available = true

	if date.IsZero() || !sameDay(date, now) {
		return result
	}

	// Same-day booking: apply the notice-period rule for this slot.
	gap := float64(slot.StartHour - now.Hour())

	switch slot.ID {
	case model.SlotMorning:
		if gap < morningNoticeHours {
			result.Available = false
			result.Reason = reasonMorningNotice
		}
	case model.SlotMidnight:
		if gap < midnightNoticeHours {
			result.Available = false
			result.Reason = reasonMidnightNotice
		}
	default:
		if gap < defaultNoticeHours {
			result.Available = false
			result.Reason = reasonDefaultNotice
		}
	}

	return result
}

// CheckSlots evaluates the whole catalog against one date
func CheckSlots(slots []model.Slot, date, now time.Time) []model.SlotAvailability {
	results := make([]model.SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		results = append(results, CheckSlot(slot, date, now))
	}
	return results
}

// SameDayNotice is the banner text shown when the selected date is today
func SameDayNotice(now time.Time) string {
	return fmt.Sprintf(
		"Same-day delivery: morning slots need 5+ hours notice, midnight slots need 2+ hours, other slots need 30+ minutes. Current time: %s",
		now.Format("3:04 PM"),
	)
}

// FormatDisplayDate renders a date as "Monday, January 2nd, 2006".
// Returns a placeholder for the zero value.
func FormatDisplayDate(date time.Time) string {
	if date.IsZero() {
		return "Select a delivery date"
	}
	return fmt.Sprintf("%s, %s %s, %d",
		date.Weekday(), date.Month(), ordinal(date.Day()), date.Year())
}

func ordinal(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
		// 11th, 12th, 13th
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
