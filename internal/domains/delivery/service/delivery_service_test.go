package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"florist-backend/internal/domains/delivery/model"
)

// stubSource is a canned HolidaySource
type stubSource struct {
	holidays []model.Holiday
	err      error
	calls    int
}

func (s *stubSource) FetchYear(ctx context.Context, year int) ([]model.Holiday, error) {
	s.calls++
	return s.holidays, s.err
}

// stubRepo is an in-memory store holiday repository
type stubRepo struct {
	holidays []model.Holiday
	listErr  error

	// byDate serves GetByDate; separate from holidays so tests can model
	// a closure missing from the year listing
	byDate map[string]*model.Holiday
}

func (r *stubRepo) ListByYear(ctx context.Context, year int) ([]model.Holiday, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.holidays, nil
}

func (r *stubRepo) Create(ctx context.Context, holiday *model.Holiday) error {
	holiday.ID = uuid.NewString()
	r.holidays = append(r.holidays, *holiday)
	return nil
}

func (r *stubRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *stubRepo) GetByDate(ctx context.Context, date time.Time) (*model.Holiday, error) {
	return r.byDate[date.Format("2006-01-02")], nil
}

func newTestService(source *stubSource, repo *stubRepo, now time.Time) ServiceInterface {
	return NewDeliveryServiceWithClock(source, repo, nil, time.Hour, func() time.Time { return now })
}

func holidayIDs(holidays []model.Holiday) []string {
	ids := make([]string, 0, len(holidays))
	for _, h := range holidays {
		ids = append(ids, h.ID)
	}
	return ids
}

func TestGetHolidaysFallsBackOnSourceError(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}
	svc := newTestService(source, &stubRepo{}, clock(2025, time.June, 15, 10, 0))

	holidays := svc.GetHolidays(context.Background(), 2025)

	require.NotEmpty(t, holidays)
	assert.Contains(t, holidayIDs(holidays), "fallback-christmas-2025")
	assert.Contains(t, holidayIDs(holidays), "fallback-diwali-2025")
}

func TestGetHolidaysFallsBackOnEmptyResponse(t *testing.T) {
	source := &stubSource{holidays: []model.Holiday{}}
	svc := newTestService(source, &stubRepo{}, clock(2025, time.June, 15, 10, 0))

	holidays := svc.GetHolidays(context.Background(), 2025)

	assert.Contains(t, holidayIDs(holidays), "fallback-republic-day-2025")
}

func TestGetHolidaysUsesRemoteWhenAvailable(t *testing.T) {
	remote := model.Holiday{
		ID:       "remote-christmas",
		Name:     "Christmas",
		Date:     date(2025, time.December, 25),
		Reason:   "Christmas Day - Store closed",
		IsActive: true,
	}
	source := &stubSource{holidays: []model.Holiday{remote}}
	svc := newTestService(source, &stubRepo{}, clock(2025, time.June, 15, 10, 0))

	holidays := svc.GetHolidays(context.Background(), 2025)

	require.Len(t, holidays, 1)
	assert.Equal(t, "remote-christmas", holidays[0].ID)
}

func TestGetHolidaysMergesStoreClosures(t *testing.T) {
	source := &stubSource{holidays: []model.Holiday{{
		ID: "remote-christmas", Date: date(2025, time.December, 25), IsActive: true,
	}}}
	repo := &stubRepo{holidays: []model.Holiday{{
		ID: "store-inventory-day", Date: date(2025, time.July, 1), Reason: "Stocktake", IsActive: true,
	}}}
	svc := newTestService(source, repo, clock(2025, time.June, 15, 10, 0))

	holidays := svc.GetHolidays(context.Background(), 2025)

	assert.Len(t, holidays, 2)
	assert.Contains(t, holidayIDs(holidays), "store-inventory-day")
}

func TestCheckDateOnFallbackHoliday(t *testing.T) {
	source := &stubSource{err: errors.New("timeout")}
	svc := newTestService(source, &stubRepo{}, clock(2025, time.June, 15, 10, 0))

	result := svc.CheckDate(context.Background(), date(2025, time.December, 25))

	assert.True(t, result.Disabled)
	assert.Equal(t, "Christmas Day - Store closed", result.Reason)
	assert.True(t, result.IsHoliday)
	require.NotNil(t, result.Holiday)
	assert.Equal(t, "Christmas", result.Holiday.Name)
}

func TestCheckDateToday(t *testing.T) {
	svc := newTestService(&stubSource{}, &stubRepo{}, clock(2025, time.June, 15, 10, 0))

	result := svc.CheckDate(context.Background(), date(2025, time.June, 15))

	assert.False(t, result.Disabled)
	assert.True(t, result.IsToday)
	assert.NotEmpty(t, result.SameDayNotice)
	assert.Equal(t, "Sunday, June 15th, 2025", result.DisplayDate)
}

func TestCheckDateSeesClosureMissingFromYearSet(t *testing.T) {
	closure := &model.Holiday{
		ID:       "store-inventory-day",
		Name:     "Inventory Day",
		Date:     date(2025, time.July, 2),
		Reason:   "Closed for stocktaking",
		IsActive: true,
	}
	repo := &stubRepo{byDate: map[string]*model.Holiday{"2025-07-02": closure}}
	svc := newTestService(&stubSource{}, repo, clock(2025, time.June, 15, 10, 0))

	result := svc.CheckDate(context.Background(), date(2025, time.July, 2))
	assert.True(t, result.Disabled)
	assert.True(t, result.IsHoliday)
	assert.Equal(t, "Closed for stocktaking", result.Reason)

	_, err := svc.ValidateBooking(context.Background(), date(2025, time.July, 2), model.SlotMorning)
	assert.ErrorIs(t, err, model.ErrDateNotBookable)
	assert.Contains(t, err.Error(), "Closed for stocktaking")
}

func TestCheckDateIgnoresDeactivatedClosure(t *testing.T) {
	closure := &model.Holiday{
		ID:       "store-old-closure",
		Date:     date(2025, time.July, 3),
		Reason:   "Cancelled closure",
		IsActive: false,
	}
	repo := &stubRepo{byDate: map[string]*model.Holiday{"2025-07-03": closure}}
	svc := newTestService(&stubSource{}, repo, clock(2025, time.June, 15, 10, 0))

	result := svc.CheckDate(context.Background(), date(2025, time.July, 3))
	assert.False(t, result.Disabled)
	assert.False(t, result.IsHoliday)
}

func TestValidateBooking(t *testing.T) {
	now := clock(2025, time.June, 15, 10, 0)
	svc := newTestService(&stubSource{}, &stubRepo{}, now)
	ctx := context.Background()

	t.Run("valid future booking returns the slot", func(t *testing.T) {
		slot, err := svc.ValidateBooking(ctx, date(2025, time.June, 20), model.SlotMidnight)
		require.NoError(t, err)
		assert.Equal(t, model.SlotMidnight, slot.ID)
		require.NotNil(t, slot.Price)
		assert.Equal(t, "100", slot.Price.String())
	})

	t.Run("unknown slot id", func(t *testing.T) {
		_, err := svc.ValidateBooking(ctx, date(2025, time.June, 20), "overnight")
		assert.ErrorIs(t, err, model.ErrSlotNotFound)
	})

	t.Run("past date", func(t *testing.T) {
		_, err := svc.ValidateBooking(ctx, date(2025, time.June, 10), model.SlotMorning)
		assert.ErrorIs(t, err, model.ErrDateNotBookable)
		assert.Contains(t, err.Error(), "Cannot select past dates")
	})

	t.Run("holiday date", func(t *testing.T) {
		_, err := svc.ValidateBooking(ctx, date(2025, time.August, 15), model.SlotMorning)
		assert.ErrorIs(t, err, model.ErrDateNotBookable)
		assert.Contains(t, err.Error(), "Independence Day")
	})

	t.Run("same-day slot without enough notice", func(t *testing.T) {
		_, err := svc.ValidateBooking(ctx, date(2025, time.June, 15), model.SlotMorning)
		assert.ErrorIs(t, err, model.ErrSlotNotBookable)
		assert.Contains(t, err.Error(), "Need 5+ hours notice")
	})
}

func TestCreateStoreHolidayAppearsInSet(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(&stubSource{err: errors.New("down")}, repo, clock(2025, time.June, 15, 10, 0))

	created, err := svc.CreateStoreHoliday(context.Background(), model.CreateHolidayRequest{
		Name:   "Renovation",
		Date:   "2025-09-10",
		Reason: "Store renovation",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	result := svc.CheckDate(context.Background(), date(2025, time.September, 10))
	assert.True(t, result.Disabled)
	assert.Equal(t, "Store renovation", result.Reason)
}
