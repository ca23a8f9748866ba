package service

import (
	"fmt"
	"time"

	"florist-backend/internal/domains/delivery/model"
)

// FallbackHolidays synthesizes the store's fixed holiday set for a year.
// Used whenever the remote holiday service is unreachable or returns nothing,
// so the storefront is never left without holiday context. Diwali and Holi
// move every year; these are fixed-date placeholders, not the real dates.
func FallbackHolidays(year int) []model.Holiday {
	entries := []struct {
		slug     string
		name     string
		month    time.Month
		day      int
		reason   string
		holType  string
		category string
	}{
		{"republic-day", "Republic Day", time.January, 26, "Republic Day - Store closed", model.HolidayTypeFixed, model.HolidayCategoryNational},
		{"holi", "Holi", time.March, 14, "Holi - Store closed", model.HolidayTypeDynamic, model.HolidayCategoryReligious},
		{"independence-day", "Independence Day", time.August, 15, "Independence Day - Store closed", model.HolidayTypeFixed, model.HolidayCategoryNational},
		{"gandhi-jayanti", "Gandhi Jayanti", time.October, 2, "Gandhi Jayanti - Store closed", model.HolidayTypeFixed, model.HolidayCategoryNational},
		{"diwali", "Diwali", time.November, 1, "Diwali - Store closed", model.HolidayTypeDynamic, model.HolidayCategoryReligious},
		{"christmas", "Christmas", time.December, 25, "Christmas Day - Store closed", model.HolidayTypeFixed, model.HolidayCategoryReligious},
		{"new-year-eve", "New Year's Eve", time.December, 31, "New Year's Eve - Store closed", model.HolidayTypeFixed, model.HolidayCategoryNational},
	}

	holidays := make([]model.Holiday, 0, len(entries))
	for _, e := range entries {
		holidays = append(holidays, model.Holiday{
			ID:        fmt.Sprintf("fallback-%s-%d", e.slug, year),
			Name:      e.name,
			Date:      time.Date(year, e.month, e.day, 0, 0, 0, 0, time.Local),
			Reason:    e.reason,
			Type:      e.holType,
			Category:  e.category,
			IsActive:  true,
			Recurring: true,
		})
	}
	return holidays
}
