package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"florist-backend/internal/config"
)

// SMTPProvider implements the dispatcher's EmailProvider on plain SMTP with
// STARTTLS. Multipart messages carry the HTML body plus a text fallback.
type SMTPProvider struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSMTPProvider returns nil when credentials are absent so the email
// channel is disabled instead of failing at send time with auth errors.
func NewSMTPProvider(cfg config.SMTPConfig) *SMTPProvider {
	if !cfg.EmailConfigured() {
		log.Warn().Msg("[Email] SMTP credentials not set, email channel disabled")
		return nil
	}
	return &SMTPProvider{
		host: cfg.Host,
		port: cfg.Port,
		user: cfg.User,
		pass: cfg.Pass,
		from: cfg.From,
	}
}

func (p *SMTPProvider) addr() string {
	return fmt.Sprintf("%s:%d", p.host, p.port)
}

func (p *SMTPProvider) SendEmail(ctx context.Context, to, subject, htmlBody, textBody string) (string, error) {
	msg := p.buildMessage(to, subject, htmlBody, textBody)
	auth := smtp.PlainAuth("", p.user, p.pass, p.host)

	if err := smtp.SendMail(p.addr(), auth, p.from, []string{to}, msg); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}

	// SMTP has no provider message ID; synthesize one for the delivery log.
	messageID := fmt.Sprintf("smtp-%d", time.Now().UnixNano())

	log.Info().
		Str("to", to).
		Str("message_id", messageID).
		Msg("[Email] Sent successfully")

	return messageID, nil
}

// Verify performs the SMTP handshake without sending anything
func (p *SMTPProvider) Verify(ctx context.Context) error {
	client, err := smtp.Dial(p.addr())
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: p.host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", p.user, p.pass, p.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}

	return client.Quit()
}

const multipartBoundary = "sb-alt-boundary"

func (p *SMTPProvider) buildMessage(to, subject, htmlBody, textBody string) []byte {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: Spring Blossoms <%s>\r\n", p.from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", multipartBoundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", multipartBoundary))
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", multipartBoundary))
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s--\r\n", multipartBoundary))

	return []byte(b.String())
}
