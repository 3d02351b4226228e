package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
)

func newGatewayConfig(url string) config.Notify {
	return config.Notify{
		GatewayURL:     url,
		RequestTimeout: 5 * time.Second,
	}
}

func TestGatewayNotifier_Send(t *testing.T) {
	var got gatewayRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	n := NewGatewayNotifier(newGatewayConfig(srv.URL), logger.Nop())

	err := n.Send(context.Background(), Message{
		Subject:   "Password Reset - CODE",
		Body:      "Your password reset code is: AB12",
		Recipient: "a@x.com",
		Route:     "password_recovery",
		Context:   "AB12",
	})
	require.NoError(t, err)

	assert.Equal(t, "Password Reset - CODE", got.Subject)
	assert.Equal(t, "a@x.com", got.Recipient)
	assert.Equal(t, "password_recovery", got.Route)
	assert.Equal(t, "AB12", got.Context)
}

func TestGatewayNotifier_Send_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewGatewayNotifier(newGatewayConfig(srv.URL), logger.Nop())

	err := n.Send(context.Background(), Message{Recipient: "a@x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGatewayNotifier_Send_ConnectionFailure(t *testing.T) {
	// Point at a server that is already gone.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	n := NewGatewayNotifier(newGatewayConfig(url), logger.Nop())

	err := n.Send(context.Background(), Message{Recipient: "a@x.com"})
	assert.Error(t, err)
}

func TestNewNotifier_SelectsTransport(t *testing.T) {
	gateway := NewNotifier(newGatewayConfig("http://gateway:9000"), logger.Nop())
	assert.IsType(t, &gatewayNotifier{}, gateway)

	direct := NewNotifier(config.Notify{SMTP: config.SMTP{Host: "mail.example.com"}}, logger.Nop())
	assert.IsType(t, &smtpNotifier{}, direct)
}
