package job

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"florist-backend/internal/domains/delivery/service"
	"florist-backend/pkg/logger"
)

// RefreshHolidayCacheHandler re-fetches the holiday set for the current year
// on a schedule so storefront requests always hit a warm cache.
type RefreshHolidayCacheHandler struct {
	deliveryService service.ServiceInterface
}

func NewRefreshHolidayCacheHandler(deliveryService service.ServiceInterface) *RefreshHolidayCacheHandler {
	return &RefreshHolidayCacheHandler{deliveryService: deliveryService}
}

func (h *RefreshHolidayCacheHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	year := time.Now().Year()

	if err := h.deliveryService.RefreshHolidayCache(ctx, year); err != nil {
		logger.Error("Failed to refresh holiday cache", err)
		return err
	}

	logger.Info("Holiday cache refreshed", map[string]interface{}{
		"year": year,
	})
	return nil
}
