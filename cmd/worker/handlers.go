package main

import (
	"github.com/hibiken/asynq"

	cartJob "florist-backend/internal/domains/cart/job"
	deliveryJob "florist-backend/internal/domains/delivery/job"
	notifJob "florist-backend/internal/domains/notification/job"
	promoJob "florist-backend/internal/domains/promotion/job"
	"florist-backend/internal/shared"
	"florist-backend/pkg/container"
)

// HandlerRegistry holds every task handler the worker serves
type HandlerRegistry struct {
	sendConfirmation *notifJob.SendOrderConfirmationHandler
	sendStatusUpdate *notifJob.SendStatusUpdateHandler
	retryFailed      *notifJob.RetryFailedDeliveriesHandler
	refreshHolidays  *deliveryJob.RefreshHolidayCacheHandler
	clearStaleCarts  *cartJob.ClearStaleCartsHandler
	expirePromotions *promoJob.DeactivateExpiredHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		sendConfirmation: notifJob.NewSendOrderConfirmationHandler(c.Dispatcher),
		sendStatusUpdate: notifJob.NewSendStatusUpdateHandler(c.Dispatcher),
		retryFailed:      notifJob.NewRetryFailedDeliveriesHandler(c.Dispatcher, c.DeliveryLogRepo),
		refreshHolidays:  deliveryJob.NewRefreshHolidayCacheHandler(c.DeliveryService),
		clearStaleCarts:  cartJob.NewClearStaleCartsHandler(c.CartService, c.Config.Job.CartRetentionDays),
		expirePromotions: promoJob.NewDeactivateExpiredHandler(c.PromotionService),
	}
}

// RegisterHandlers binds task types to their handlers
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeSendOrderConfirmation, r.sendConfirmation)
	mux.Handle(shared.TypeSendOrderStatusUpdate, r.sendStatusUpdate)
	mux.Handle(shared.TypeRetryFailedDeliveries, r.retryFailed)
	mux.Handle(shared.TypeRefreshHolidayCache, r.refreshHolidays)
	mux.Handle(shared.TypeClearStaleCarts, r.clearStaleCarts)
	mux.Handle(shared.TypeDeactivatePromotions, r.expirePromotions)
}
