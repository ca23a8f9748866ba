package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"florist-backend/internal/domains/notification/model"
)

// mockEmail records sends and returns canned outcomes
type mockEmail struct {
	sendErr   error
	verifyErr error
	sent      []string // recipients
	subjects  []string
}

func (m *mockEmail) SendEmail(ctx context.Context, to, subject, htmlBody, textBody string) (string, error) {
	if m.sendErr != nil {
		return "", m.sendErr
	}
	m.sent = append(m.sent, to)
	m.subjects = append(m.subjects, subject)
	return "email-msg-1", nil
}

func (m *mockEmail) Verify(ctx context.Context) error { return m.verifyErr }

// mockMessaging covers both SMS and WhatsApp
type mockMessaging struct {
	smsErr      error
	whatsappErr error
	verifyErr   error
	smsTo       []string
	whatsappTo  []string
}

func (m *mockMessaging) SendSMS(ctx context.Context, to, body string) (string, error) {
	if m.smsErr != nil {
		return "", m.smsErr
	}
	m.smsTo = append(m.smsTo, to)
	return "sms-msg-1", nil
}

func (m *mockMessaging) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	if m.whatsappErr != nil {
		return "", m.whatsappErr
	}
	m.whatsappTo = append(m.whatsappTo, to)
	return "wa-msg-1", nil
}

func (m *mockMessaging) Verify(ctx context.Context) error { return m.verifyErr }

// captureLogRepo records what the dispatcher persists
type captureLogRepo struct {
	entries []model.DeliveryLog
}

func (r *captureLogRepo) Create(ctx context.Context, entry *model.DeliveryLog) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *captureLogRepo) ListRetryable(ctx context.Context, limit int) ([]model.DeliveryLog, error) {
	return nil, nil
}

func sampleOrder() model.OrderData {
	return model.OrderData{
		Order: model.OrderSummary{
			OrderNumber: "FL-20251220-4F9A1C",
			CreatedAt:   time.Date(2025, time.December, 18, 11, 30, 0, 0, time.Local),
			Currency:    "INR",
			TotalAmount: decimal.NewFromInt(2499),
			ShippingDetails: model.ShippingDetails{
				FullName:     "Asha Patel",
				Address:      "14 Rose Garden Lane",
				City:         "Mumbai",
				State:        "MH",
				ZipCode:      "400001",
				Phone:        "+919800000001",
				DeliveryDate: "2025-12-20",
				TimeSlot:     "Morning (9:00 AM - 12:00 PM)",
			},
		},
		Customer: model.Customer{
			Name:  "Ravi Patel",
			Email: "ravi@example.com",
			Phone: "+919800000002",
		},
		Items: []model.OrderItem{
			{Product: "Red Rose Bouquet", Quantity: 1, Price: decimal.NewFromInt(2499), FinalPrice: decimal.NewFromInt(2499)},
		},
	}
}

func TestDispatchAllChannelsSucceed(t *testing.T) {
	emailP := &mockEmail{}
	msgP := &mockMessaging{}
	d := NewDispatcher(emailP, msgP, nil)

	result := d.Dispatch(context.Background(), sampleOrder())

	assert.Equal(t, 3, result.SuccessCount())
	assert.Equal(t, "email-msg-1", result.Email.MessageID)
	assert.Equal(t, "sms-msg-1", result.SMS.MessageID)
	assert.Equal(t, "wa-msg-1", result.WhatsApp.MessageID)

	// customer phone preferred over shipping phone
	require.Len(t, msgP.smsTo, 1)
	assert.Equal(t, "+919800000002", msgP.smsTo[0])
}

func TestDispatchUnconfiguredChannels(t *testing.T) {
	t.Run("no email provider", func(t *testing.T) {
		d := NewDispatcher(nil, &mockMessaging{}, nil)

		result := d.Dispatch(context.Background(), sampleOrder())

		assert.False(t, result.Email.Success)
		assert.Equal(t, "Email service not configured", result.Email.Error)
		assert.True(t, result.SMS.Success)
		assert.True(t, result.WhatsApp.Success)
	})

	t.Run("no messaging provider", func(t *testing.T) {
		d := NewDispatcher(&mockEmail{}, nil, nil)

		result := d.Dispatch(context.Background(), sampleOrder())

		assert.True(t, result.Email.Success)
		assert.Equal(t, "SMS service not configured", result.SMS.Error)
		assert.Equal(t, "WhatsApp service not configured", result.WhatsApp.Error)
	})

	t.Run("nothing configured", func(t *testing.T) {
		d := NewDispatcher(nil, nil, nil)

		result := d.Dispatch(context.Background(), sampleOrder())

		assert.Equal(t, 0, result.SuccessCount())
	})
}

func TestDispatchSettlesAllOnFailure(t *testing.T) {
	emailP := &mockEmail{sendErr: errors.New("smtp: connection reset")}
	msgP := &mockMessaging{}
	d := NewDispatcher(emailP, msgP, nil)

	result := d.Dispatch(context.Background(), sampleOrder())

	// one channel failing never blocks the others
	assert.False(t, result.Email.Success)
	assert.Equal(t, "smtp: connection reset", result.Email.Error)
	assert.True(t, result.SMS.Success)
	assert.True(t, result.WhatsApp.Success)
	assert.Equal(t, 2, result.SuccessCount())
}

func TestDispatchMissingRecipients(t *testing.T) {
	data := sampleOrder()
	data.Customer.Phone = ""
	data.Order.ShippingDetails.Phone = ""
	data.Customer.Email = ""

	d := NewDispatcher(&mockEmail{}, &mockMessaging{}, nil)
	result := d.Dispatch(context.Background(), data)

	assert.Equal(t, "No email address provided", result.Email.Error)
	assert.Equal(t, "No phone number provided", result.SMS.Error)
	assert.Equal(t, "No phone number provided", result.WhatsApp.Error)
}

func TestDispatchFallsBackToShippingPhone(t *testing.T) {
	data := sampleOrder()
	data.Customer.Phone = ""

	msgP := &mockMessaging{}
	d := NewDispatcher(nil, msgP, nil)
	d.Dispatch(context.Background(), data)

	require.Len(t, msgP.smsTo, 1)
	assert.Equal(t, "+919800000001", msgP.smsTo[0])
	require.Len(t, msgP.whatsappTo, 1)
	assert.Equal(t, "+919800000001", msgP.whatsappTo[0])
}

func TestDispatchRecordsDeliveryLogs(t *testing.T) {
	logRepo := &captureLogRepo{}
	d := NewDispatcher(&mockEmail{}, &mockMessaging{smsErr: errors.New("twilio: 500")}, logRepo)

	d.Dispatch(context.Background(), sampleOrder())

	require.Len(t, logRepo.entries, 3)

	byChannel := map[string]model.DeliveryLog{}
	for _, e := range logRepo.entries {
		byChannel[e.Channel] = e
		assert.Equal(t, "FL-20251220-4F9A1C", e.OrderNumber)
		assert.Equal(t, 1, e.Attempt)
		assert.NotEmpty(t, e.Payload)
	}

	assert.Equal(t, model.DeliveryStatusSent, byChannel[model.ChannelEmail].Status)
	assert.Equal(t, model.DeliveryStatusFailed, byChannel[model.ChannelSMS].Status)
	require.NotNil(t, byChannel[model.ChannelSMS].Error)
	assert.Equal(t, "twilio: 500", *byChannel[model.ChannelSMS].Error)
	assert.Equal(t, model.DeliveryStatusSent, byChannel[model.ChannelWhatsApp].Status)
}

func TestSendChannel(t *testing.T) {
	d := NewDispatcher(&mockEmail{}, &mockMessaging{}, nil)
	ctx := context.Background()
	data := sampleOrder()

	assert.True(t, d.SendChannel(ctx, model.ChannelEmail, data).Success)
	assert.True(t, d.SendChannel(ctx, model.ChannelSMS, data).Success)
	assert.True(t, d.SendChannel(ctx, model.ChannelWhatsApp, data).Success)

	unknown := d.SendChannel(ctx, "pigeon", data)
	assert.False(t, unknown.Success)
	assert.Contains(t, unknown.Error, "unknown channel")
}

func TestSendStatusEmail(t *testing.T) {
	emailP := &mockEmail{}
	d := NewDispatcher(emailP, nil, nil)

	result := d.SendStatusEmail(context.Background(), sampleOrder(), "out_for_delivery")

	assert.True(t, result.Success)
	require.Len(t, emailP.subjects, 1)
	assert.Contains(t, emailP.subjects[0], "FL-20251220-4F9A1C")
}

func TestSelfTest(t *testing.T) {
	t.Run("all transports healthy", func(t *testing.T) {
		d := NewDispatcher(&mockEmail{}, &mockMessaging{}, nil)

		results := d.SelfTest(context.Background())

		assert.True(t, results[model.ChannelEmail])
		assert.True(t, results[model.ChannelSMS])
		assert.True(t, results[model.ChannelWhatsApp])
	})

	t.Run("nothing configured", func(t *testing.T) {
		d := NewDispatcher(nil, nil, nil)

		results := d.SelfTest(context.Background())

		assert.False(t, results[model.ChannelEmail])
		assert.False(t, results[model.ChannelSMS])
		assert.False(t, results[model.ChannelWhatsApp])
	})

	t.Run("messaging verify failure marks both channels", func(t *testing.T) {
		d := NewDispatcher(&mockEmail{}, &mockMessaging{verifyErr: errors.New("401")}, nil)

		results := d.SelfTest(context.Background())

		assert.True(t, results[model.ChannelEmail])
		assert.False(t, results[model.ChannelSMS])
		assert.False(t, results[model.ChannelWhatsApp])
	})
}
