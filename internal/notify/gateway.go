package notify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
)

// gatewayNotifier posts messages to an HTTP notification gateway that owns
// templating and the actual channel delivery.
type gatewayNotifier struct {
	client *resty.Client
	logger *logger.Logger
}

// gatewayRequest is the JSON body posted to the gateway.
type gatewayRequest struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Recipient string `json:"recipient"`
	Route     string `json:"route,omitempty"`
	Context   string `json:"context,omitempty"`
}

// NewGatewayNotifier constructs a [Notifier] posting to the gateway at
// cfg.GatewayURL with cfg.RequestTimeout per delivery attempt.
func NewGatewayNotifier(cfg config.Notify, log *logger.Logger) Notifier {
	log.Debug().Str("gateway", cfg.GatewayURL).Msg("creating gateway notifier")

	client := resty.New().
		SetBaseURL(cfg.GatewayURL).
		SetTimeout(cfg.RequestTimeout)

	return &gatewayNotifier{client: client, logger: log}
}

// Send posts msg to the gateway's /notifications endpoint. Any non-2xx
// response is a delivery failure.
func (n *gatewayNotifier) Send(ctx context.Context, msg Message) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(gatewayRequest{
			Subject:   msg.Subject,
			Body:      msg.Body,
			Recipient: msg.Recipient,
			Route:     msg.Route,
			Context:   msg.Context,
		}).
		Post("/notifications")
	if err != nil {
		return fmt.Errorf("notification gateway post: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("notification gateway responded %d", resp.StatusCode())
	}

	return nil
}

// NewNotifier selects the delivery transport from configuration: the HTTP
// gateway when a URL is set, direct SMTP otherwise.
func NewNotifier(cfg config.Notify, log *logger.Logger) Notifier {
	if cfg.GatewayURL != "" {
		return NewGatewayNotifier(cfg, log)
	}

	return NewSMTPNotifier(cfg.SMTP, log)
}
