package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"florist-backend/internal/domains/delivery/model"
	"florist-backend/internal/domains/delivery/repository"
	"florist-backend/pkg/cache"
)

type DeliveryService struct {
	source   HolidaySource
	repo     repository.RepositoryInterface
	cache    cache.Cache
	cacheTTL time.Duration

	// now is injectable so availability decisions are testable
	now func() time.Time
}

func NewDeliveryService(
	source HolidaySource,
	repo repository.RepositoryInterface,
	c cache.Cache,
	cacheTTL time.Duration,
) ServiceInterface {
	return &DeliveryService{
		source:   source,
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// NewDeliveryServiceWithClock is used by tests to pin the current time
func NewDeliveryServiceWithClock(
	source HolidaySource,
	repo repository.RepositoryInterface,
	c cache.Cache,
	cacheTTL time.Duration,
	now func() time.Time,
) ServiceInterface {
	return &DeliveryService{
		source:   source,
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      now,
	}
}

func holidayCacheKey(year int) string {
	return fmt.Sprintf("delivery:holidays:%d", year)
}

// GetHolidays returns the effective holiday set for a year.
// Order of authority: cache, remote service, generated fallback. Store-defined
// closures from postgres are merged in on top of whichever source won.
// Failures at every level are swallowed; callers always receive a usable set.
func (s *DeliveryService) GetHolidays(ctx context.Context, year int) []model.Holiday {
	var cached []model.Holiday
	if s.cache != nil {
		found, err := s.cache.Get(ctx, holidayCacheKey(year), &cached)
		if err != nil {
			log.Warn().Err(err).Int("year", year).Msg("[Delivery] Holiday cache read failed")
		}
		if found && len(cached) > 0 {
			return cached
		}
	}

	holidays := s.loadHolidays(ctx, year)

	if s.cache != nil {
		if err := s.cache.Set(ctx, holidayCacheKey(year), holidays, s.cacheTTL); err != nil {
			log.Warn().Err(err).Int("year", year).Msg("[Delivery] Holiday cache write failed")
		}
	}

	return holidays
}

func (s *DeliveryService) loadHolidays(ctx context.Context, year int) []model.Holiday {
	holidays, err := s.source.FetchYear(ctx, year)
	if err != nil || len(holidays) == 0 {
		if err != nil {
			log.Warn().Err(err).Int("year", year).Msg("[Delivery] Holiday service unavailable, using fallback set")
		} else {
			log.Info().Int("year", year).Msg("[Delivery] Holiday service returned empty list, using fallback set")
		}
		holidays = FallbackHolidays(year)
	}

	storeHolidays, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		log.Warn().Err(err).Int("year", year).Msg("[Delivery] Failed to load store holidays")
		return holidays
	}

	return append(holidays, storeHolidays...)
}

func (s *DeliveryService) CheckDate(ctx context.Context, date time.Time) model.DateAvailability {
	now := s.now()
	holidays := s.GetHolidays(ctx, date.Year())

	result := model.DateAvailability{
		Date:        date.Format("2006-01-02"),
		DisplayDate: FormatDisplayDate(date),
		IsToday:     sameDay(date, now),
	}

	if reason := DateDisabledReason(date, now, holidays); reason != "" {
		result.Disabled = true
		result.Reason = reason
	}

	if h := ActiveHolidayOn(date, holidays); h != nil {
		result.IsHoliday = true
		result.Holiday = h
	} else if stored := s.storeClosureOn(ctx, date); stored != nil {
		// Closure created after the year set was cached: postgres is
		// authoritative for the store's own closures.
		result.IsHoliday = true
		result.Holiday = stored
		if !result.Disabled {
			result.Disabled = true
			result.Reason = stored.Reason
		}
	}

	if result.IsToday {
		result.SameDayNotice = SameDayNotice(now)
	}

	return result
}

// storeClosureOn looks up an active store closure for the exact day,
// bypassing the cached year set
func (s *DeliveryService) storeClosureOn(ctx context.Context, date time.Time) *model.Holiday {
	h, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		log.Warn().Err(err).Str("date", date.Format("2006-01-02")).Msg("[Delivery] Store closure lookup failed")
		return nil
	}
	if h == nil || !h.IsActive {
		return nil
	}
	return h
}

func (s *DeliveryService) ListSlots(ctx context.Context, date time.Time) []model.SlotAvailability {
	return CheckSlots(model.DefaultSlots(), date, s.now())
}

// ValidateBooking guards checkout against disabled dates and slots
func (s *DeliveryService) ValidateBooking(ctx context.Context, date time.Time, slotID string) (model.Slot, error) {
	slot, ok := model.SlotByID(slotID)
	if !ok {
		return model.Slot{}, fmt.Errorf("%w: %q", model.ErrSlotNotFound, slotID)
	}

	now := s.now()
	holidays := s.GetHolidays(ctx, date.Year())

	if reason := DateDisabledReason(date, now, holidays); reason != "" {
		return model.Slot{}, fmt.Errorf("%w: %s", model.ErrDateNotBookable, reason)
	}
	if h := s.storeClosureOn(ctx, date); h != nil {
		return model.Slot{}, fmt.Errorf("%w: %s", model.ErrDateNotBookable, h.Reason)
	}

	availability := CheckSlot(slot, date, now)
	if !availability.Available {
		return model.Slot{}, fmt.Errorf("%w: %s", model.ErrSlotNotBookable, availability.Reason)
	}

	return slot, nil
}

func (s *DeliveryService) CreateStoreHoliday(ctx context.Context, req model.CreateHolidayRequest) (*model.Holiday, error) {
	date, err := req.ParsedDate()
	if err != nil {
		return nil, fmt.Errorf("parse holiday date: %w", err)
	}

	category := req.Category
	if category == "" {
		category = model.HolidayCategoryStore
	}

	holiday := &model.Holiday{
		Name:     req.Name,
		Date:     date,
		Reason:   req.Reason,
		Category: category,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, holiday); err != nil {
		return nil, err
	}

	s.invalidateYear(ctx, date.Year())

	log.Info().
		Str("holiday_id", holiday.ID).
		Str("date", req.Date).
		Msg("[Delivery] Store holiday created")

	return holiday, nil
}

func (s *DeliveryService) DeleteStoreHoliday(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// The deleted row's year is unknown here; drop every cached year.
	if s.cache != nil {
		if err := s.cache.DeletePattern(ctx, "delivery:holidays:*"); err != nil {
			log.Warn().Err(err).Msg("[Delivery] Holiday cache invalidation failed")
		}
	}

	return nil
}

// RefreshHolidayCache is called by the daily background job so the first
// storefront request of the day does not pay the remote fetch.
func (s *DeliveryService) RefreshHolidayCache(ctx context.Context, year int) error {
	holidays := s.loadHolidays(ctx, year)

	if s.cache != nil {
		if err := s.cache.Set(ctx, holidayCacheKey(year), holidays, s.cacheTTL); err != nil {
			return fmt.Errorf("refresh holiday cache: %w", err)
		}
	}

	log.Info().
		Int("year", year).
		Int("count", len(holidays)).
		Msg("[Delivery] Holiday cache refreshed")

	return nil
}

func (s *DeliveryService) invalidateYear(ctx context.Context, year int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, holidayCacheKey(year)); err != nil {
		log.Warn().Err(err).Int("year", year).Msg("[Delivery] Holiday cache invalidation failed")
	}
}
