package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"florist-backend/internal/domains/promotion/model"
)

type stubPromoRepo struct {
	promos     map[string]*model.Promotion
	usageCalls int
}

func (r *stubPromoRepo) GetByCode(ctx context.Context, code string) (*model.Promotion, error) {
	return r.promos[code], nil
}

func (r *stubPromoRepo) Create(ctx context.Context, promo *model.Promotion) error {
	promo.ID = uuid.New()
	if r.promos == nil {
		r.promos = map[string]*model.Promotion{}
	}
	r.promos[promo.Code] = promo
	return nil
}

func (r *stubPromoRepo) List(ctx context.Context, limit, offset int) ([]model.Promotion, int, error) {
	return nil, 0, nil
}

func (r *stubPromoRepo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	r.usageCalls++
	return nil
}

func (r *stubPromoRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error { return nil }

func (r *stubPromoRepo) DeactivateExpired(ctx context.Context) (int64, error) { return 0, nil }

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)
}

func activePromo() *model.Promotion {
	maxUses := 100
	return &model.Promotion{
		ID:             uuid.New(),
		Code:           "BLOOM10",
		DiscountType:   model.DiscountTypePercentage,
		DiscountValue:  d("10"),
		MinOrderAmount: d("500"),
		StartsAt:       time.Date(2025, time.June, 1, 0, 0, 0, 0, time.Local),
		ExpiresAt:      time.Date(2025, time.June, 30, 23, 59, 59, 0, time.Local),
		MaxUses:        &maxUses,
		CurrentUses:    5,
		IsActive:       true,
	}
}

func newPromoTestService(promos ...*model.Promotion) *PromotionService {
	repo := &stubPromoRepo{promos: map[string]*model.Promotion{}}
	for _, p := range promos {
		repo.promos[p.Code] = p
	}
	return &PromotionService{
		repo:       repo,
		calculator: NewDiscountCalculator(),
		now:        fixedNow,
	}
}

func TestValidateCodeHappyPath(t *testing.T) {
	svc := newPromoTestService(activePromo())

	result, err := svc.ValidateCode(context.Background(), "BLOOM10", d("2500"))
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Equal(t, "BLOOM10", result.Code)
	assert.True(t, d("250").Equal(result.DiscountAmount))
	assert.True(t, d("2250").Equal(result.FinalTotal))
}

func TestValidateCodeRejections(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p *model.Promotion)
		subtotal   string
		wantReason string
	}{
		{
			name:       "unknown code",
			mutate:     func(p *model.Promotion) { p.Code = "OTHER" },
			subtotal:   "2500",
			wantReason: "Invalid promo code",
		},
		{
			name:       "inactive",
			mutate:     func(p *model.Promotion) { p.IsActive = false },
			subtotal:   "2500",
			wantReason: "This promo code is no longer active",
		},
		{
			name: "not started yet",
			mutate: func(p *model.Promotion) {
				p.StartsAt = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local)
				p.ExpiresAt = time.Date(2025, time.July, 31, 0, 0, 0, 0, time.Local)
			},
			subtotal:   "2500",
			wantReason: "Promo code not yet active (starts Jul 1, 2025)",
		},
		{
			name: "expired",
			mutate: func(p *model.Promotion) {
				p.StartsAt = time.Date(2025, time.May, 1, 0, 0, 0, 0, time.Local)
				p.ExpiresAt = time.Date(2025, time.May, 31, 23, 59, 59, 0, time.Local)
			},
			subtotal:   "2500",
			wantReason: "Promo code expired on May 31, 2025",
		},
		{
			name:       "below minimum order",
			mutate:     func(p *model.Promotion) {},
			subtotal:   "499.99",
			wantReason: "Minimum order amount of 500.00 required",
		},
		{
			name:       "usage limit reached",
			mutate:     func(p *model.Promotion) { p.CurrentUses = 100 },
			subtotal:   "2500",
			wantReason: "This promo code has reached its usage limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := activePromo()
			tt.mutate(promo)
			svc := newPromoTestService(promo)

			result, err := svc.ValidateCode(context.Background(), "BLOOM10", d(tt.subtotal))
			require.NoError(t, err)

			assert.False(t, result.IsValid)
			assert.Equal(t, tt.wantReason, result.Reason)
			assert.True(t, result.DiscountAmount.IsZero())
			assert.True(t, d(tt.subtotal).Equal(result.FinalTotal), "subtotal passes through on rejection")
		})
	}
}

func TestApplyCodeIsCaseInsensitive(t *testing.T) {
	promo := activePromo()
	svc := newPromoTestService(promo)

	for _, input := range []string{"bloom10", "Bloom10", "  bloom10  ", "BLOOM10"} {
		result, matched, err := svc.ApplyCode(context.Background(), input, d("1000"))
		require.NoError(t, err, "input %q", input)
		require.NotNil(t, matched, "input %q", input)

		assert.True(t, result.IsValid, "input %q", input)
		assert.Equal(t, "BLOOM10", result.Code, "input %q", input)
		assert.Equal(t, promo.ID, matched.ID, "input %q", input)
	}
}

func TestCreateStoresUppercasedCode(t *testing.T) {
	svc := newPromoTestService()

	created, err := svc.Create(context.Background(), &model.CreatePromotionRequest{
		Code:          " rose5 ",
		DiscountType:  string(model.DiscountTypeFixed),
		DiscountValue: d("5"),
		StartsAt:      "2025-06-01",
		ExpiresAt:     "2025-06-30",
	})
	require.NoError(t, err)
	assert.Equal(t, "ROSE5", created.Code)
}

func TestApplyCodeReturnsPromotionForUsageTracking(t *testing.T) {
	promo := activePromo()
	svc := newPromoTestService(promo)

	result, matched, err := svc.ApplyCode(context.Background(), "BLOOM10", d("1000"))
	require.NoError(t, err)
	require.True(t, result.IsValid)
	require.NotNil(t, matched)
	assert.Equal(t, promo.ID, matched.ID)

	require.NoError(t, svc.RecordUsage(context.Background(), matched.ID))
	assert.Equal(t, 1, svc.repo.(*stubPromoRepo).usageCalls)
}

func TestPromotionWindowIsInclusive(t *testing.T) {
	promo := activePromo()

	assert.True(t, promo.IsWithinWindow(promo.StartsAt))
	assert.True(t, promo.IsWithinWindow(promo.ExpiresAt))
	assert.False(t, promo.IsWithinWindow(promo.ExpiresAt.Add(time.Second)))
}

func TestUnlimitedUsePromotion(t *testing.T) {
	promo := activePromo()
	promo.MaxUses = nil
	promo.CurrentUses = 1_000_000

	assert.True(t, promo.HasUsesLeft())
}
