package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
)

// smtpNotifier delivers messages directly over SMTP with STARTTLS.
type smtpNotifier struct {
	cfg    config.SMTP
	logger *logger.Logger
}

// NewSMTPNotifier constructs a [Notifier] that delivers mail through the
// server described by cfg.
func NewSMTPNotifier(cfg config.SMTP, log *logger.Logger) Notifier {
	log.Debug().Str("host", cfg.Host).Msg("creating smtp notifier")
	return &smtpNotifier{cfg: cfg, logger: log}
}

// Send delivers msg as a plain-text mail. Route and Context are folded into
// the body; SMTP has no separate channel for them.
func (n *smtpNotifier) Send(ctx context.Context, msg Message) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	client, err := smtpConnect(n.cfg, addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if n.cfg.Username != "" {
		auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(n.cfg.FromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := client.Rcpt(msg.Recipient); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}

	from := n.cfg.FromEmail
	if n.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", n.cfg.FromName, n.cfg.FromEmail)
	}

	body := msg.Body
	if msg.Context != "" {
		body += "\r\n\r\n" + msg.Context
	}

	if _, err := writer.Write([]byte(buildMessage(from, msg.Recipient, msg.Subject, body))); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}
	if err := client.Quit(); err != nil && !strings.Contains(err.Error(), "use of closed network connection") {
		return fmt.Errorf("smtp quit: %w", err)
	}

	return nil
}

func smtpConnect(cfg config.SMTP, addr string) (*smtp.Client, error) {
	client, err := smtp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("smtp dial: %w", err)
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("smtp starttls: %w", err)
		}
	}

	return client, nil
}

func buildMessage(from, to, subject, body string) string {
	lines := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}
	return strings.Join(lines, "\r\n")
}
