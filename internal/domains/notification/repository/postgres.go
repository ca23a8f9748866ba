package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"florist-backend/internal/domains/notification/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) DeliveryLogRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entry *model.DeliveryLog) error {
	query := `
		INSERT INTO notification_deliveries
			(id, order_number, channel, recipient, status, message_id, error, attempt, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`

	entry.ID = uuid.New()
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.OrderNumber,
		entry.Channel,
		entry.Recipient,
		entry.Status,
		entry.MessageID,
		entry.Error,
		entry.Attempt,
		entry.Payload,
	)
	if err != nil {
		return fmt.Errorf("failed to create delivery log: %w", err)
	}

	return nil
}

// ListRetryable picks the latest attempt per (order_number, channel) and keeps
// only those that failed below the attempt cap. Channels that later succeeded
// are excluded by taking the most recent row.
func (r *postgresRepository) ListRetryable(ctx context.Context, limit int) ([]model.DeliveryLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT DISTINCT ON (order_number, channel)
			id, order_number, channel, recipient, status, message_id, error, attempt, payload, created_at
		FROM notification_deliveries
		ORDER BY order_number, channel, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery logs: %w", err)
	}
	defer rows.Close()

	var retryable []model.DeliveryLog
	for rows.Next() {
		var entry model.DeliveryLog
		if err := rows.Scan(
			&entry.ID,
			&entry.OrderNumber,
			&entry.Channel,
			&entry.Recipient,
			&entry.Status,
			&entry.MessageID,
			&entry.Error,
			&entry.Attempt,
			&entry.Payload,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan delivery log: %w", err)
		}

		if entry.Status == model.DeliveryStatusFailed && entry.Attempt < model.MaxDeliveryAttempts {
			retryable = append(retryable, entry)
			if len(retryable) >= limit {
				break
			}
		}
	}

	return retryable, rows.Err()
}
