package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"florist-backend/internal/domains/notification/model"
	"florist-backend/internal/domains/notification/repository"
)

// Dispatcher fans one order confirmation out across three independent
// transports. Providers are injected at construction; a nil provider means
// that channel is unconfigured and short-circuits to a failure result
// instead of failing startup or throwing at send time.
type Dispatcher struct {
	email     EmailProvider   // nil when SMTP credentials are absent
	messaging MessageProvider // nil when Twilio credentials are absent
	logRepo   repository.DeliveryLogRepository
}

func NewDispatcher(
	email EmailProvider,
	messaging MessageProvider,
	logRepo repository.DeliveryLogRepository,
) DispatcherInterface {
	return &Dispatcher{
		email:     email,
		messaging: messaging,
		logRepo:   logRepo,
	}
}

// Dispatch issues the three sends concurrently and joins with settle-all
// semantics: every channel finishes, success or failure, before the aggregate
// result is returned. This method never returns an error.
func (d *Dispatcher) Dispatch(ctx context.Context, data model.OrderData) model.DispatchResult {
	log.Info().
		Str("order_number", data.Order.OrderNumber).
		Msg("[Dispatcher] Sending order notifications")

	var result model.DispatchResult
	var wg sync.WaitGroup

	// Each goroutine writes its own field; no shared mutable state.
	wg.Add(3)
	go func() {
		defer wg.Done()
		result.Email = d.sendEmail(ctx, data)
	}()
	go func() {
		defer wg.Done()
		result.SMS = d.sendSMS(ctx, data)
	}()
	go func() {
		defer wg.Done()
		result.WhatsApp = d.sendWhatsApp(ctx, data)
	}()
	wg.Wait()

	d.recordResults(ctx, data, result, 1)

	log.Info().
		Str("order_number", data.Order.OrderNumber).
		Int("sent", result.SuccessCount()).
		Int("total", 3).
		Msg("[Dispatcher] Notification dispatch complete")

	return result
}

// SendChannel attempts delivery on one named channel. Used by the retry job.
func (d *Dispatcher) SendChannel(ctx context.Context, channel string, data model.OrderData) model.SendResult {
	switch channel {
	case model.ChannelEmail:
		return d.sendEmail(ctx, data)
	case model.ChannelSMS:
		return d.sendSMS(ctx, data)
	case model.ChannelWhatsApp:
		return d.sendWhatsApp(ctx, data)
	}
	return model.SendResult{Success: false, Error: "unknown channel: " + channel}
}

// ================================================
// PER-CHANNEL SENDS
// ================================================

func (d *Dispatcher) sendEmail(ctx context.Context, data model.OrderData) model.SendResult {
	if d.email == nil {
		return model.SendResult{Success: false, Error: "Email service not configured"}
	}
	if data.Customer.Email == "" {
		return model.SendResult{Success: false, Error: "No email address provided"}
	}

	subject, htmlBody, textBody := RenderEmail(data)

	messageID, err := d.email.SendEmail(ctx, data.Customer.Email, subject, htmlBody, textBody)
	if err != nil {
		log.Error().
			Err(err).
			Str("order_number", data.Order.OrderNumber).
			Str("recipient", data.Customer.Email).
			Msg("[Dispatcher] Email send failed")
		return model.SendResult{Success: false, Error: err.Error()}
	}

	return model.SendResult{Success: true, MessageID: messageID}
}

func (d *Dispatcher) sendSMS(ctx context.Context, data model.OrderData) model.SendResult {
	if d.messaging == nil {
		return model.SendResult{Success: false, Error: "SMS service not configured"}
	}

	phone := data.RecipientPhone()
	if phone == "" {
		return model.SendResult{Success: false, Error: "No phone number provided"}
	}

	messageID, err := d.messaging.SendSMS(ctx, phone, RenderSMS(data))
	if err != nil {
		log.Error().
			Err(err).
			Str("order_number", data.Order.OrderNumber).
			Str("recipient", phone).
			Msg("[Dispatcher] SMS send failed")
		return model.SendResult{Success: false, Error: err.Error()}
	}

	return model.SendResult{Success: true, MessageID: messageID}
}

func (d *Dispatcher) sendWhatsApp(ctx context.Context, data model.OrderData) model.SendResult {
	if d.messaging == nil {
		return model.SendResult{Success: false, Error: "WhatsApp service not configured"}
	}

	phone := data.RecipientPhone()
	if phone == "" {
		return model.SendResult{Success: false, Error: "No phone number provided"}
	}

	messageID, err := d.messaging.SendWhatsApp(ctx, phone, RenderWhatsApp(data))
	if err != nil {
		log.Error().
			Err(err).
			Str("order_number", data.Order.OrderNumber).
			Str("recipient", phone).
			Msg("[Dispatcher] WhatsApp send failed")
		return model.SendResult{Success: false, Error: err.Error()}
	}

	return model.SendResult{Success: true, MessageID: messageID}
}

// SendStatusEmail emails the customer about an order status change.
// Status updates deliberately use the email channel only.
func (d *Dispatcher) SendStatusEmail(ctx context.Context, data model.OrderData, newStatus string) model.SendResult {
	if d.email == nil {
		return model.SendResult{Success: false, Error: "Email service not configured"}
	}
	if data.Customer.Email == "" {
		return model.SendResult{Success: false, Error: "No email address provided"}
	}

	subject, htmlBody, textBody := RenderStatusEmail(data, newStatus)

	messageID, err := d.email.SendEmail(ctx, data.Customer.Email, subject, htmlBody, textBody)
	if err != nil {
		log.Error().
			Err(err).
			Str("order_number", data.Order.OrderNumber).
			Str("status", newStatus).
			Msg("[Dispatcher] Status email send failed")
		return model.SendResult{Success: false, Error: err.Error()}
	}

	return model.SendResult{Success: true, MessageID: messageID}
}

// ================================================
// SELF TEST
// ================================================

// SelfTest independently verifies each transport is reachable. It is an
// operational health check and is never invoked by the dispatch path.
func (d *Dispatcher) SelfTest(ctx context.Context) map[string]bool {
	results := map[string]bool{
		model.ChannelEmail:    false,
		model.ChannelSMS:      false,
		model.ChannelWhatsApp: false,
	}

	if d.email != nil {
		if err := d.email.Verify(ctx); err != nil {
			log.Warn().Err(err).Msg("[Dispatcher] Email transport verify failed")
		} else {
			results[model.ChannelEmail] = true
		}
	}

	if d.messaging != nil {
		if err := d.messaging.Verify(ctx); err != nil {
			log.Warn().Err(err).Msg("[Dispatcher] Messaging transport verify failed")
		} else {
			// SMS and WhatsApp share one client and one account check
			results[model.ChannelSMS] = true
			results[model.ChannelWhatsApp] = true
		}
	}

	return results
}

// ================================================
// DELIVERY LOGGING
// ================================================

// recordResults persists per-channel outcomes for the retry job. Logging is
// best-effort: a write failure must not fail the dispatch.
func (d *Dispatcher) recordResults(ctx context.Context, data model.OrderData, result model.DispatchResult, attempt int) {
	if d.logRepo == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Msg("[Dispatcher] Failed to marshal order data for delivery log")
		return
	}

	recipients := map[string]string{
		model.ChannelEmail:    data.Customer.Email,
		model.ChannelSMS:      data.RecipientPhone(),
		model.ChannelWhatsApp: data.RecipientPhone(),
	}

	for _, channel := range model.Channels() {
		res := result.ByChannel(channel)

		entry := &model.DeliveryLog{
			OrderNumber: data.Order.OrderNumber,
			Channel:     channel,
			Recipient:   recipients[channel],
			Status:      model.DeliveryStatusSent,
			Attempt:     attempt,
			Payload:     payload,
		}
		if res.Success {
			entry.MessageID = &res.MessageID
		} else {
			entry.Status = model.DeliveryStatusFailed
			errMsg := res.Error
			entry.Error = &errMsg
		}

		if err := d.logRepo.Create(ctx, entry); err != nil {
			log.Warn().
				Err(err).
				Str("channel", channel).
				Str("order_number", data.Order.OrderNumber).
				Msg("[Dispatcher] Failed to write delivery log")
		}
	}
}

// RecordRetry persists the outcome of a single-channel retry attempt
func (d *Dispatcher) RecordRetry(ctx context.Context, data model.OrderData, channel string, res model.SendResult, attempt int) {
	if d.logRepo == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Msg("[Dispatcher] Failed to marshal order data for delivery log")
		return
	}

	recipient := data.Customer.Email
	if channel != model.ChannelEmail {
		recipient = data.RecipientPhone()
	}

	entry := &model.DeliveryLog{
		OrderNumber: data.Order.OrderNumber,
		Channel:     channel,
		Recipient:   recipient,
		Status:      model.DeliveryStatusSent,
		Attempt:     attempt,
		Payload:     payload,
	}
	if res.Success {
		entry.MessageID = &res.MessageID
	} else {
		entry.Status = model.DeliveryStatusFailed
		errMsg := res.Error
		entry.Error = &errMsg
	}

	if err := d.logRepo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("[Dispatcher] Failed to write delivery log")
	}
}
