package repository

import (
	"context"

	"github.com/google/uuid"

	"florist-backend/internal/domains/product/model"
)

type RepositoryInterface interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
