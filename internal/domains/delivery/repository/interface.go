package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"florist-backend/internal/domains/delivery/model"
)

// RepositoryInterface persists store-defined holidays (admin closures).
// National/religious holidays come from the remote service or the fallback
// generator; this repository only holds the store's own closures.
type RepositoryInterface interface {
	ListByYear(ctx context.Context, year int) ([]model.Holiday, error)
	Create(ctx context.Context, holiday *model.Holiday) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByDate(ctx context.Context, date time.Time) (*model.Holiday, error)
}
