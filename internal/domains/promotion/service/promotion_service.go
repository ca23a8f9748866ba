package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"florist-backend/internal/domains/promotion/model"
	"florist-backend/internal/domains/promotion/repository"
)

type ServiceInterface interface {
	ValidateCode(ctx context.Context, code string, subtotal decimal.Decimal) (*model.ValidationResult, error)
	ApplyCode(ctx context.Context, code string, subtotal decimal.Decimal) (*model.ValidationResult, *model.Promotion, error)
	RecordUsage(ctx context.Context, id uuid.UUID) error
	Create(ctx context.Context, req *model.CreatePromotionRequest) (*model.Promotion, error)
	List(ctx context.Context, limit, offset int) ([]model.Promotion, int, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	DeactivateExpired(ctx context.Context) (int64, error)
}

type PromotionService struct {
	repo       repository.RepositoryInterface
	calculator *DiscountCalculator
	now        func() time.Time
}

func NewPromotionService(repo repository.RepositoryInterface) ServiceInterface {
	return &PromotionService{
		repo:       repo,
		calculator: NewDiscountCalculator(),
		now:        time.Now,
	}
}

// invalid builds a rejection result carrying the subtotal through untouched
func invalid(reason string, subtotal decimal.Decimal) *model.ValidationResult {
	return &model.ValidationResult{
		IsValid:        false,
		Reason:         reason,
		DiscountAmount: decimal.Zero,
		FinalTotal:     subtotal,
	}
}

// ValidateCode runs the full rule chain for a promo code against a subtotal.
// A failed rule is a business outcome, not an error: the error return is
// reserved for infrastructure failures.
func (s *PromotionService) ValidateCode(ctx context.Context, code string, subtotal decimal.Decimal) (*model.ValidationResult, error) {
	result, _, err := s.ApplyCode(ctx, code, subtotal)
	return result, err
}

// ApplyCode is ValidateCode plus the matched promotion, for checkout to
// record usage after the order commits. Codes are matched
// case-insensitively: the input is uppercased here so every caller
// (cart, checkout, public validate) resolves the same promotion.
func (s *PromotionService) ApplyCode(ctx context.Context, code string, subtotal decimal.Decimal) (*model.ValidationResult, *model.Promotion, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	promo, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up promo code: %w", err)
	}

	if promo == nil {
		return invalid("Invalid promo code", subtotal), nil, nil
	}

	if !promo.IsActive {
		return invalid("This promo code is no longer active", subtotal), nil, nil
	}

	now := s.now()
	if now.Before(promo.StartsAt) {
		reason := fmt.Sprintf("Promo code not yet active (starts %s)", promo.StartsAt.Format("Jan 2, 2006"))
		return invalid(reason, subtotal), nil, nil
	}
	if now.After(promo.ExpiresAt) {
		reason := fmt.Sprintf("Promo code expired on %s", promo.ExpiresAt.Format("Jan 2, 2006"))
		return invalid(reason, subtotal), nil, nil
	}

	if subtotal.LessThan(promo.MinOrderAmount) {
		reason := fmt.Sprintf("Minimum order amount of %s required", promo.MinOrderAmount.StringFixed(2))
		return invalid(reason, subtotal), nil, nil
	}

	if !promo.HasUsesLeft() {
		return invalid("This promo code has reached its usage limit", subtotal), nil, nil
	}

	discount := s.calculator.Calculate(promo, subtotal)

	return &model.ValidationResult{
		IsValid:        true,
		Code:           promo.Code,
		DiscountAmount: discount,
		FinalTotal:     subtotal.Sub(discount),
	}, promo, nil
}

func (s *PromotionService) RecordUsage(ctx context.Context, id uuid.UUID) error {
	return s.repo.IncrementUsage(ctx, id)
}

func (s *PromotionService) Create(ctx context.Context, req *model.CreatePromotionRequest) (*model.Promotion, error) {
	startsAt, err := time.Parse("2006-01-02", req.StartsAt)
	if err != nil {
		return nil, fmt.Errorf("invalid starts_at: %w", err)
	}
	expiresAt, err := time.Parse("2006-01-02", req.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("invalid expires_at: %w", err)
	}
	// expiry is inclusive of the whole day
	expiresAt = expiresAt.Add(24*time.Hour - time.Second)

	promo := &model.Promotion{
		Code:              strings.ToUpper(strings.TrimSpace(req.Code)),
		Description:       req.Description,
		DiscountType:      model.DiscountType(req.DiscountType),
		DiscountValue:     req.DiscountValue,
		MaxDiscountAmount: req.MaxDiscountAmount,
		MinOrderAmount:    req.MinOrderAmount,
		StartsAt:          startsAt,
		ExpiresAt:         expiresAt,
		MaxUses:           req.MaxUses,
	}

	if err := s.repo.Create(ctx, promo); err != nil {
		return nil, err
	}

	log.Info().
		Str("code", promo.Code).
		Str("discount_type", string(promo.DiscountType)).
		Msg("[PromotionService] Promotion created")

	return promo, nil
}

func (s *PromotionService) List(ctx context.Context, limit, offset int) ([]model.Promotion, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *PromotionService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

func (s *PromotionService) DeactivateExpired(ctx context.Context) (int64, error) {
	count, err := s.repo.DeactivateExpired(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Info().Int64("count", count).Msg("[PromotionService] Deactivated expired promotions")
	}
	return count, nil
}
