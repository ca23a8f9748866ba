package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"florist-backend/internal/config"
)

// TwilioProvider implements the dispatcher's MessageProvider against the
// Twilio REST API. One client and one account cover both SMS and WhatsApp;
// WhatsApp sends only differ by the "whatsapp:" address prefix.
type TwilioProvider struct {
	accountSID string
	authToken  string
	fromNumber string
	apiBaseURL string
	httpClient *http.Client
}

// NewTwilioProvider returns nil when any credential is missing so both
// messaging channels are disabled gracefully.
func NewTwilioProvider(cfg config.TwilioConfig) *TwilioProvider {
	if !cfg.MessagingConfigured() {
		log.Warn().Msg("[Messaging] Twilio credentials not set, SMS/WhatsApp channels disabled")
		return nil
	}
	return &TwilioProvider{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		fromNumber: cfg.FromNumber,
		apiBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type twilioMessageResponse struct {
	SID          string  `json:"sid"`
	Status       string  `json:"status"`
	ErrorMessage *string `json:"error_message"`
}

type twilioErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (p *TwilioProvider) SendSMS(ctx context.Context, to, body string) (string, error) {
	return p.sendMessage(ctx, p.fromNumber, to, body)
}

func (p *TwilioProvider) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	return p.sendMessage(ctx, "whatsapp:"+p.fromNumber, "whatsapp:"+to, body)
}

func (p *TwilioProvider) sendMessage(ctx context.Context, from, to, body string) (string, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", p.apiBaseURL, p.accountSID)

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build twilio request: %w", err)
	}
	req.SetBasicAuth(p.accountSID, p.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read twilio response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr twilioErrorResponse
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Message != "" {
			return "", fmt.Errorf("twilio error %d: %s", apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	var message twilioMessageResponse
	if err := json.Unmarshal(respBody, &message); err != nil {
		return "", fmt.Errorf("decode twilio response: %w", err)
	}

	log.Info().
		Str("to", to).
		Str("message_sid", message.SID).
		Str("status", message.Status).
		Msg("[Messaging] Message accepted by Twilio")

	return message.SID, nil
}

// Verify fetches the account resource to prove credentials and reachability
func (p *TwilioProvider) Verify(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s.json", p.apiBaseURL, p.accountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build twilio verify request: %w", err)
	}
	req.SetBasicAuth(p.accountSID, p.authToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio verify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("twilio account fetch returned status %d", resp.StatusCode)
	}

	return nil
}
