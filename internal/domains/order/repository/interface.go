package repository

import (
	"context"

	"github.com/google/uuid"

	"florist-backend/internal/domains/order/model"
)

type RepositoryInterface interface {
	// Create persists the order, its items and the initial status history
	// entry in one transaction
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int, error)
	// UpdateStatus changes the status and appends a history entry atomically
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, note string) error
	ListHistory(ctx context.Context, orderID uuid.UUID) ([]model.StatusChange, error)
}
