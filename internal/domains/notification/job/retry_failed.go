package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"florist-backend/internal/domains/notification/model"
	"florist-backend/internal/domains/notification/repository"
	"florist-backend/internal/domains/notification/service"
	"florist-backend/internal/shared"
	"florist-backend/internal/shared/utils"
	"florist-backend/pkg/logger"
)

// RetryFailedDeliveriesHandler re-attempts channels that failed on a previous
// dispatch, up to the attempt cap. Runs on a schedule.
type RetryFailedDeliveriesHandler struct {
	dispatcher service.DispatcherInterface
	logRepo    repository.DeliveryLogRepository
}

func NewRetryFailedDeliveriesHandler(
	dispatcher service.DispatcherInterface,
	logRepo repository.DeliveryLogRepository,
) *RetryFailedDeliveriesHandler {
	return &RetryFailedDeliveriesHandler{
		dispatcher: dispatcher,
		logRepo:    logRepo,
	}
}

func (h *RetryFailedDeliveriesHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.RetryFailedPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	failed, err := h.logRepo.ListRetryable(ctx, payload.Limit)
	if err != nil {
		return fmt.Errorf("list retryable deliveries: %w", err)
	}

	if len(failed) == 0 {
		logger.Info("No failed deliveries to retry", map[string]interface{}{})
		return nil
	}

	successCount := 0
	errorCount := 0

	for _, entry := range failed {
		var data model.OrderData
		if err := json.Unmarshal(entry.Payload, &data); err != nil {
			logger.Error("Failed to unmarshal delivery payload", err)
			errorCount++
			continue
		}

		result := h.dispatcher.SendChannel(ctx, entry.Channel, data)
		h.dispatcher.RecordRetry(ctx, data, entry.Channel, result, entry.Attempt+1)

		if result.Success {
			successCount++
		} else {
			errorCount++
		}
	}

	logger.Info("Finished retrying failed deliveries", map[string]interface{}{
		"success": successCount,
		"errors":  errorCount,
	})

	return nil
}
