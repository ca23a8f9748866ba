package shared

// Asynq task types
const (
	TypeSendOrderConfirmation  = "order:send_confirmation"
	TypeSendOrderStatusUpdate  = "order:send_status_update"
	TypeRetryFailedDeliveries  = "notification:retry_failed"
	TypeRefreshHolidayCache    = "delivery:refresh_holiday_cache"
	TypeClearStaleCarts        = "cart:clear_stale"
	TypeDeactivatePromotions   = "promotion:deactivate_expired"
)

// Asynq queue names. Order notifications are customer-facing and get the
// high-priority queue; maintenance jobs run on low.
const (
	QueueNotification = "high"
	QueueDefault      = "default"
	QueueMaintenance  = "low"
)

// RetryFailedPayload is the scheduled-task payload for the notification retry job
type RetryFailedPayload struct {
	Limit int `json:"limit"`
}
