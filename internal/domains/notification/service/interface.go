package service

import (
	"context"

	"florist-backend/internal/domains/notification/model"
)

// ================================================
// PROVIDER INTERFACES (external transports)
// ================================================

// EmailProvider sends one HTML email with a plain-text alternative
type EmailProvider interface {
	SendEmail(ctx context.Context, to, subject, htmlBody, textBody string) (messageID string, err error)
	Verify(ctx context.Context) error
}

// MessageProvider covers both SMS and WhatsApp behind one client, matching
// the single messaging account the store runs both channels on
type MessageProvider interface {
	SendSMS(ctx context.Context, to, body string) (messageID string, err error)
	SendWhatsApp(ctx context.Context, to, body string) (messageID string, err error)
	Verify(ctx context.Context) error
}

// ================================================
// DISPATCHER
// ================================================

type DispatcherInterface interface {
	// Dispatch fans one order confirmation out across email, SMS and WhatsApp
	// concurrently with settle-all semantics. It never returns an error;
	// total failure of all three channels is a normal, reportable outcome.
	Dispatch(ctx context.Context, data model.OrderData) model.DispatchResult

	// SendChannel attempts delivery on a single named channel (used by the
	// retry job and by status-update emails)
	SendChannel(ctx context.Context, channel string, data model.OrderData) model.SendResult

	// SendStatusEmail emails the customer about an order status change
	SendStatusEmail(ctx context.Context, data model.OrderData, newStatus string) model.SendResult

	// RecordRetry persists the outcome of a single-channel retry attempt
	RecordRetry(ctx context.Context, data model.OrderData, channel string, res model.SendResult, attempt int)

	// SelfTest verifies each transport is reachable, independent of Dispatch
	SelfTest(ctx context.Context) map[string]bool
}
