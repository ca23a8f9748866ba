package job

import (
	"context"

	"github.com/hibiken/asynq"

	"florist-backend/internal/domains/promotion/service"
	"florist-backend/pkg/logger"
)

// DeactivateExpiredHandler flips off promotions past their expiry window
type DeactivateExpiredHandler struct {
	promotionService service.ServiceInterface
}

func NewDeactivateExpiredHandler(promotionService service.ServiceInterface) *DeactivateExpiredHandler {
	return &DeactivateExpiredHandler{promotionService: promotionService}
}

func (h *DeactivateExpiredHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	count, err := h.promotionService.DeactivateExpired(ctx)
	if err != nil {
		logger.Error("Failed to deactivate expired promotions", err)
		return err
	}

	logger.Info("Expired promotion cleanup finished", map[string]interface{}{
		"deactivated": count,
	})
	return nil
}
