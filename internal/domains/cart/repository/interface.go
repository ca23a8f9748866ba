package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"florist-backend/internal/domains/cart/model"
)

type RepositoryInterface interface {
	// GetOrCreate loads the user's cart with items, creating an empty one on first use
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error)
	UpsertItem(ctx context.Context, item *model.CartItem) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error
	Clear(ctx context.Context, cartID uuid.UUID) error
	DeleteStale(ctx context.Context, olderThan time.Time) (int64, error)

	AddWishlistItem(ctx context.Context, item *model.WishlistItem) error
	RemoveWishlistItem(ctx context.Context, userID, itemID uuid.UUID) error
	ListWishlist(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error)
}
