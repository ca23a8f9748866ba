package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"florist-backend/internal/domains/notification/model"
	"florist-backend/internal/domains/notification/service"
	"florist-backend/internal/shared/utils"
	"florist-backend/pkg/logger"
)

// SendOrderConfirmationHandler runs the multi-channel dispatch off the
// checkout path. A fully-failed dispatch is still a processed task: the
// retry job deals with failed channels via the delivery log, not asynq.
type SendOrderConfirmationHandler struct {
	dispatcher service.DispatcherInterface
}

func NewSendOrderConfirmationHandler(dispatcher service.DispatcherInterface) *SendOrderConfirmationHandler {
	return &SendOrderConfirmationHandler{dispatcher: dispatcher}
}

func (h *SendOrderConfirmationHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.SendOrderConfirmationPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	logger.Info("Processing send order confirmation task", map[string]interface{}{
		"order_number": payload.OrderData.Order.OrderNumber,
		"email":        payload.OrderData.Customer.Email,
	})

	result := h.dispatcher.Dispatch(ctx, payload.OrderData)

	logger.Info("Order confirmation dispatch finished", map[string]interface{}{
		"order_number": payload.OrderData.Order.OrderNumber,
		"sent":         result.SuccessCount(),
		"total":        3,
	})

	return nil
}

// SendStatusUpdateHandler emails customers about order status changes
type SendStatusUpdateHandler struct {
	dispatcher service.DispatcherInterface
}

func NewSendStatusUpdateHandler(dispatcher service.DispatcherInterface) *SendStatusUpdateHandler {
	return &SendStatusUpdateHandler{dispatcher: dispatcher}
}

func (h *SendStatusUpdateHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.SendStatusUpdatePayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	result := h.dispatcher.SendStatusEmail(ctx, payload.OrderData, payload.NewStatus)
	if !result.Success {
		logger.Info("Status update email failed", map[string]interface{}{
			"order_number": payload.OrderData.Order.OrderNumber,
			"status":       payload.NewStatus,
			"error":        result.Error,
		})
	}

	return nil
}
