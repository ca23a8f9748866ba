package model

// SendOrderConfirmationPayload carries the full order projection to the worker
type SendOrderConfirmationPayload struct {
	OrderData OrderData `json:"order_data"`
}

// SendStatusUpdatePayload is enqueued when an admin changes order status.
// Status updates go out on the email channel only.
type SendStatusUpdatePayload struct {
	OrderData OrderData `json:"order_data"`
	NewStatus string    `json:"new_status"`
}
