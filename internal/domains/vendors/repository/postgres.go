package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"florist-backend/internal/domains/vendors/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, vendor *model.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
	List(ctx context.Context, status model.VendorStatus, limit, offset int) ([]model.Vendor, int, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.VendorStatus) error
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const vendorColumns = `id, name, email, phone, store_name, status, created_at, updated_at`

func scanVendor(row pgx.Row) (*model.Vendor, error) {
	var v model.Vendor
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.StoreName, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *postgresRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, email, phone, store_name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	vendor.ID = uuid.New()
	vendor.Status = model.StatusPending
	_, err := r.pool.Exec(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.Email,
		vendor.Phone,
		vendor.StoreName,
		vendor.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create vendor: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`

	vendor, err := scanVendor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return vendor, nil
}

func (r *postgresRepository) List(ctx context.Context, status model.VendorStatus, limit, offset int) ([]model.Vendor, int, error) {
	whereClause := "1=1"
	args := []interface{}{}
	if status != "" {
		whereClause = "status = $1"
		args = append(args, status)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM vendors WHERE ` + whereClause
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vendors: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM vendors WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		vendorColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors := make([]model.Vendor, 0, limit)
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, *v)
	}

	return vendors, total, rows.Err()
}

func (r *postgresRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.VendorStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE vendors SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update vendor status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrVendorNotFound
	}
	return nil
}
