package repository

import (
	"context"

	"github.com/google/uuid"

	"florist-backend/internal/domains/promotion/model"
)

type RepositoryInterface interface {
	GetByCode(ctx context.Context, code string) (*model.Promotion, error)
	Create(ctx context.Context, promo *model.Promotion) error
	List(ctx context.Context, limit, offset int) ([]model.Promotion, int, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	DeactivateExpired(ctx context.Context) (int64, error)
}
