package job

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"florist-backend/internal/domains/cart/service"
	"florist-backend/pkg/logger"
)

// ClearStaleCartsHandler prunes abandoned carts on a schedule
type ClearStaleCartsHandler struct {
	cartService service.ServiceInterface
	retention   time.Duration
}

func NewClearStaleCartsHandler(cartService service.ServiceInterface, retentionDays int) *ClearStaleCartsHandler {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &ClearStaleCartsHandler{
		cartService: cartService,
		retention:   time.Duration(retentionDays) * 24 * time.Hour,
	}
}

func (h *ClearStaleCartsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	count, err := h.cartService.ClearStale(ctx, h.retention)
	if err != nil {
		logger.Error("Failed to clear stale carts", err)
		return err
	}

	logger.Info("Stale cart cleanup finished", map[string]interface{}{
		"deleted": count,
	})
	return nil
}
