package repository

import (
	"context"

	"florist-backend/internal/domains/notification/model"
)

// DeliveryLogRepository persists per-channel send attempts so the retry job
// can pick up failures later.
type DeliveryLogRepository interface {
	Create(ctx context.Context, entry *model.DeliveryLog) error

	// ListRetryable returns failed attempts that have not yet hit the attempt
	// cap and have no newer successful attempt on the same channel
	ListRetryable(ctx context.Context, limit int) ([]model.DeliveryLog, error)
}
