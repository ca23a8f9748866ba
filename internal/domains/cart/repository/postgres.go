package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"florist-backend/internal/domains/cart/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	var cart model.Cart

	query := `SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1`
	err := r.pool.QueryRow(ctx, query, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt, &cart.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		cart.ID = uuid.New()
		cart.UserID = userID
		insert := `INSERT INTO carts (id, user_id, created_at, updated_at) VALUES ($1, $2, NOW(), NOW())
			RETURNING created_at, updated_at`
		if err := r.pool.QueryRow(ctx, insert, cart.ID, userID).Scan(&cart.CreatedAt, &cart.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	items, err := r.listItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items

	return &cart, nil
}

func (r *postgresRepository) listItems(ctx context.Context, cartID uuid.UUID) ([]model.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, product_name, product_slug, unit_price, quantity, image_url
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := make([]model.CartItem, 0)
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductSlug,
			&item.UnitPrice,
			&item.Quantity,
			&item.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// UpsertItem adds a line or bumps the quantity when the product is already in the cart.
// The snapshot columns (name, slug, price) are refreshed on conflict so the cart
// tracks the current catalog.
func (r *postgresRepository) UpsertItem(ctx context.Context, item *model.CartItem) error {
	query := `
		INSERT INTO cart_items
			(id, cart_id, product_id, product_name, product_slug, unit_price, quantity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (cart_id, product_id) DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			product_name = EXCLUDED.product_name,
			product_slug = EXCLUDED.product_slug,
			unit_price = EXCLUDED.unit_price,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
	`

	item.ID = uuid.New()
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.CartID,
		item.ProductID,
		item.ProductName,
		item.ProductSlug,
		item.UnitPrice,
		item.Quantity,
		item.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return r.touch(ctx, item.CartID)
}

func (r *postgresRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error {
	query := `UPDATE cart_items SET quantity = $3, updated_at = NOW() WHERE cart_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query, cartID, itemID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}

	return r.touch(ctx, cartID)
}

func (r *postgresRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query, cartID, itemID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}

	return r.touch(ctx, cartID)
}

func (r *postgresRepository) Clear(ctx context.Context, cartID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return r.touch(ctx, cartID)
}

// DeleteStale removes carts untouched since the cutoff (background job)
func (r *postgresRepository) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM carts WHERE updated_at < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale carts: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) touch(ctx context.Context, cartID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE carts SET updated_at = NOW() WHERE id = $1`, cartID)
	return err
}

// =====================================================
// WISHLIST
// =====================================================

func (r *postgresRepository) AddWishlistItem(ctx context.Context, item *model.WishlistItem) error {
	query := `
		INSERT INTO wishlist_items
			(id, user_id, product_id, product_name, product_slug, unit_price, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (user_id, product_id) DO NOTHING
	`

	item.ID = uuid.New()
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.ProductID,
		item.ProductName,
		item.ProductSlug,
		item.UnitPrice,
		item.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return nil
}

func (r *postgresRepository) RemoveWishlistItem(ctx context.Context, userID, itemID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE user_id = $1 AND id = $2`, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrWishlistNotFound
	}
	return nil
}

func (r *postgresRepository) ListWishlist(ctx context.Context, userID uuid.UUID) ([]model.WishlistItem, error) {
	query := `
		SELECT id, user_id, product_id, product_name, product_slug, unit_price, image_url, created_at
		FROM wishlist_items
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	defer rows.Close()

	items := make([]model.WishlistItem, 0)
	for rows.Next() {
		var item model.WishlistItem
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductSlug,
			&item.UnitPrice,
			&item.ImageURL,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
