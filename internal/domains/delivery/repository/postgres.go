package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"florist-backend/internal/domains/delivery/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListByYear(ctx context.Context, year int) ([]model.Holiday, error) {
	query := `
		SELECT id, name, date, reason, category, is_active
		FROM store_holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date ASC
	`

	rows, err := r.pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list store holidays: %w", err)
	}
	defer rows.Close()

	var holidays []model.Holiday
	for rows.Next() {
		var h model.Holiday
		var id uuid.UUID
		if err := rows.Scan(&id, &h.Name, &h.Date, &h.Reason, &h.Category, &h.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan store holiday: %w", err)
		}
		h.ID = id.String()
		h.Type = model.HolidayTypeStore
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, holiday *model.Holiday) error {
	query := `
		INSERT INTO store_holidays (id, name, date, reason, category, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	id := uuid.New()
	_, err := r.pool.Exec(ctx, query,
		id,
		holiday.Name,
		holiday.Date,
		holiday.Reason,
		holiday.Category,
		holiday.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create store holiday: %w", err)
	}

	holiday.ID = id.String()
	holiday.Type = model.HolidayTypeStore
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM store_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrHolidayNotFound
	}
	return nil
}

func (r *postgresRepository) GetByDate(ctx context.Context, date time.Time) (*model.Holiday, error) {
	query := `
		SELECT id, name, date, reason, category, is_active
		FROM store_holidays
		WHERE date = $1::date
		LIMIT 1
	`

	var h model.Holiday
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query, date).Scan(&id, &h.Name, &h.Date, &h.Reason, &h.Category, &h.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not found - return nil, not error
		}
		return nil, fmt.Errorf("failed to get store holiday: %w", err)
	}

	h.ID = id.String()
	h.Type = model.HolidayTypeStore
	return &h, nil
}
