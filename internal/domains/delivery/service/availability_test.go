package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"florist-backend/internal/domains/delivery/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func clock(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.Local)
}

func TestDateDisabledReason(t *testing.T) {
	now := clock(2025, time.June, 15, 10, 0)
	christmas := model.Holiday{
		ID:       "christmas-2025",
		Name:     "Christmas",
		Date:     date(2025, time.December, 25),
		Reason:   "Christmas Day - Store closed",
		IsActive: true,
	}

	tests := []struct {
		name     string
		date     time.Time
		holidays []model.Holiday
		want     string
	}{
		{
			name: "yesterday is a past date",
			date: date(2025, time.June, 14),
			want: "Cannot select past dates",
		},
		{
			name: "today is not a past date",
			date: date(2025, time.June, 15),
			want: "",
		},
		{
			name: "december 31 of the current year is inside the horizon",
			date: date(2025, time.December, 31),
			want: "",
		},
		{
			name: "january 1 of next year is beyond the horizon",
			date: date(2026, time.January, 1),
			want: "Delivery not available beyond December 31st",
		},
		{
			name:     "active holiday surfaces its reason",
			date:     date(2025, time.December, 25),
			holidays: []model.Holiday{christmas},
			want:     "Christmas Day - Store closed",
		},
		{
			name: "inactive holiday does not disable the date",
			date: date(2025, time.December, 25),
			holidays: []model.Holiday{{
				ID:       "christmas-2025",
				Date:     date(2025, time.December, 25),
				Reason:   "Christmas Day - Store closed",
				IsActive: false,
			}},
			want: "",
		},
		{
			name:     "past date wins over holiday",
			date:     date(2025, time.January, 26),
			holidays: []model.Holiday{{ID: "republic-day", Date: date(2025, time.January, 26), Reason: "Republic Day", IsActive: true}},
			want:     "Cannot select past dates",
		},
		{
			name:     "horizon wins over holiday",
			date:     date(2026, time.January, 26),
			holidays: []model.Holiday{{ID: "republic-day-26", Date: date(2026, time.January, 26), Reason: "Republic Day", IsActive: true}},
			want:     "Delivery not available beyond December 31st",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DateDisabledReason(tt.date, now, tt.holidays)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != "", IsDateDisabled(tt.date, now, tt.holidays))
		})
	}
}

func TestCheckSlotSameDayNotice(t *testing.T) {
	morning, ok := model.SlotByID(model.SlotMorning)
	require.True(t, ok)
	afternoon, ok := model.SlotByID(model.SlotAfternoon)
	require.True(t, ok)
	midnight, ok := model.SlotByID(model.SlotMidnight)
	require.True(t, ok)

	day := date(2025, time.June, 15)

	tests := []struct {
		name       string
		slot       model.Slot
		nowHour    int
		nowMinute  int
		available  bool
		wantReason string
	}{
		{name: "morning at 4am has exactly 5 hours", slot: morning, nowHour: 4, available: true},
		{name: "morning at 5am has only 4 hours", slot: morning, nowHour: 5, available: false, wantReason: "Need 5+ hours notice"},
		{name: "midnight at 7pm has 3 hours", slot: midnight, nowHour: 19, available: true},
		{name: "midnight at 8pm has exactly 2 hours", slot: midnight, nowHour: 20, available: true},
		{name: "midnight at 9pm has 1 hour", slot: midnight, nowHour: 21, available: false, wantReason: "Need 2+ hours notice"},
		{name: "afternoon at noon has 1 hour", slot: afternoon, nowHour: 12, available: true},
		{name: "afternoon at 1pm has zero gap", slot: afternoon, nowHour: 13, available: false, wantReason: "Need 30+ minutes notice"},
		// minutes never count: 4:59 computes the same gap as 4:00
		{name: "morning at 4:59 still counts a 5 hour gap", slot: morning, nowHour: 4, nowMinute: 59, available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := clock(2025, time.June, 15, tt.nowHour, tt.nowMinute)
			got := CheckSlot(tt.slot, day, now)

			assert.Equal(t, tt.available, got.Available)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestCheckSlotFutureAndZeroDates(t *testing.T) {
	now := clock(2025, time.June, 15, 23, 0)

	// late in the evening every slot would fail same-day notice, but a
	// future date skips the notice rules entirely
	future := date(2025, time.June, 16)
	for _, result := range CheckSlots(model.DefaultSlots(), future, now) {
		assert.True(t, result.Available, result.Slot.ID)
		assert.Empty(t, result.Reason)
	}

	// no date chosen yet behaves like a future date
	for _, result := range CheckSlots(model.DefaultSlots(), time.Time{}, now) {
		assert.True(t, result.Available, result.Slot.ID)
	}
}

func TestCheckSlotStaticallyUnavailable(t *testing.T) {
	slot := model.Slot{ID: "morning", Label: "Morning", StartHour: 9, Available: false}

	got := CheckSlot(slot, date(2025, time.June, 20), clock(2025, time.June, 15, 10, 0))

	assert.False(t, got.Available)
	assert.Equal(t, "Unavailable", got.Reason)
}

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Time{}, "Select a delivery date"},
		{date(2025, time.June, 1), "Sunday, June 1st, 2025"},
		{date(2025, time.June, 2), "Monday, June 2nd, 2025"},
		{date(2025, time.June, 3), "Tuesday, June 3rd, 2025"},
		{date(2025, time.June, 4), "Wednesday, June 4th, 2025"},
		{date(2025, time.June, 11), "Wednesday, June 11th, 2025"},
		{date(2025, time.June, 12), "Thursday, June 12th, 2025"},
		{date(2025, time.June, 13), "Friday, June 13th, 2025"},
		{date(2025, time.June, 21), "Saturday, June 21st, 2025"},
		{date(2025, time.June, 22), "Sunday, June 22nd, 2025"},
		{date(2025, time.June, 23), "Monday, June 23rd, 2025"},
		{date(2025, time.December, 31), "Wednesday, December 31st, 2025"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDisplayDate(tt.date))
	}
}

func TestSameDayNotice(t *testing.T) {
	notice := SameDayNotice(clock(2025, time.June, 15, 14, 30))

	assert.Contains(t, notice, "5+ hours")
	assert.Contains(t, notice, "2+ hours")
	assert.Contains(t, notice, "30+ minutes")
	assert.Contains(t, notice, "2:30 PM")
}
