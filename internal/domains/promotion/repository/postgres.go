package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"florist-backend/internal/domains/promotion/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const promotionColumns = `
	id, code, description, discount_type, discount_value, max_discount_amount,
	min_order_amount, starts_at, expires_at, max_uses, current_uses, is_active,
	created_at, updated_at
`

func scanPromotion(row pgx.Row) (*model.Promotion, error) {
	var p model.Promotion
	err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Description,
		&p.DiscountType,
		&p.DiscountValue,
		&p.MaxDiscountAmount,
		&p.MinOrderAmount,
		&p.StartsAt,
		&p.ExpiresAt,
		&p.MaxUses,
		&p.CurrentUses,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) GetByCode(ctx context.Context, code string) (*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE code = $1`

	promo, err := scanPromotion(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not found - return nil, not error
		}
		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}

	return promo, nil
}

func (r *postgresRepository) Create(ctx context.Context, promo *model.Promotion) error {
	query := `
		INSERT INTO promotions
			(id, code, description, discount_type, discount_value, max_discount_amount,
			 min_order_amount, starts_at, expires_at, max_uses, current_uses, is_active,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, true, NOW(), NOW())
	`

	promo.ID = uuid.New()
	_, err := r.pool.Exec(ctx, query,
		promo.ID,
		promo.Code,
		promo.Description,
		promo.DiscountType,
		promo.DiscountValue,
		promo.MaxDiscountAmount,
		promo.MinOrderAmount,
		promo.StartsAt,
		promo.ExpiresAt,
		promo.MaxUses,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrDuplicateCode
		}
		return fmt.Errorf("failed to create promotion: %w", err)
	}

	return nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]model.Promotion, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM promotions`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count promotions: %w", err)
	}

	query := `SELECT ` + promotionColumns + `
		FROM promotions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list promotions: %w", err)
	}
	defer rows.Close()

	var promotions []model.Promotion
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan promotion: %w", err)
		}
		promotions = append(promotions, *promo)
	}

	return promotions, total, rows.Err()
}

func (r *postgresRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE promotions SET current_uses = current_uses + 1, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment promotion usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPromotionNotFound
	}

	return nil
}

func (r *postgresRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE promotions SET is_active = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("failed to update promotion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPromotionNotFound
	}

	return nil
}

// DeactivateExpired flips off promotions past their expiry (background job)
func (r *postgresRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	query := `UPDATE promotions SET is_active = false, updated_at = NOW()
		WHERE is_active = true AND expires_at < NOW()`

	tag, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired promotions: %w", err)
	}

	return tag.RowsAffected(), nil
}
