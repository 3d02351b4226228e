package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/service"
	"github.com/echoharbor/auth-core/models"
)

// ─────────────────────────────────────────────
// Function-field mocks for the service layer.
// Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	authenticateFn func(ctx context.Context, param models.AuthenticateParam) (models.AuthenticateResult, error)
	logoutFn       func(ctx context.Context, token string) error
}

func (m *mockAuthService) Authenticate(ctx context.Context, param models.AuthenticateParam) (models.AuthenticateResult, error) {
	return m.authenticateFn(ctx, param)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

type mockPasswordService struct {
	requestResetFn func(ctx context.Context, param models.PasswordParam) error
	validateCodeFn func(ctx context.Context, param models.PasswordParam) (bool, error)
	updateFn       func(ctx context.Context, param models.PasswordParam) error
	recoverFn      func(ctx context.Context, param models.AuthenticateParam) error
	resetFn        func(ctx context.Context, param models.PasswordParam) error
}

func (m *mockPasswordService) RequestReset(ctx context.Context, param models.PasswordParam) error {
	return m.requestResetFn(ctx, param)
}

func (m *mockPasswordService) ValidateCode(ctx context.Context, param models.PasswordParam) (bool, error) {
	return m.validateCodeFn(ctx, param)
}

func (m *mockPasswordService) Update(ctx context.Context, param models.PasswordParam) error {
	return m.updateFn(ctx, param)
}

func (m *mockPasswordService) Recover(ctx context.Context, param models.AuthenticateParam) error {
	return m.recoverFn(ctx, param)
}

func (m *mockPasswordService) Reset(ctx context.Context, param models.PasswordParam) error {
	return m.resetFn(ctx, param)
}

type mockRegistrationService struct {
	registerFn      func(ctx context.Context, profileCode string, param models.RegistrationParam) (models.AccountInfo, error)
	checkUserNameFn func(ctx context.Context, userName string) (bool, error)
	verifyEmailFn   func(ctx context.Context, email string) (int64, bool, error)
}

func (m *mockRegistrationService) Register(ctx context.Context, profileCode string, param models.RegistrationParam) (models.AccountInfo, error) {
	return m.registerFn(ctx, profileCode, param)
}

func (m *mockRegistrationService) CheckUserName(ctx context.Context, userName string) (bool, error) {
	return m.checkUserNameFn(ctx, userName)
}

func (m *mockRegistrationService) VerifyEmail(ctx context.Context, email string) (int64, bool, error) {
	return m.verifyEmailFn(ctx, email)
}

type mockSessionManager struct {
	createFn   func(ctx context.Context, info models.AccountInfo) (string, error)
	readFn     func(ctx context.Context, token string) (*models.SessionData, error)
	deleteFn   func(ctx context.Context, token string) error
	validateFn func(ctx context.Context, token string) (*models.SessionData, error)
}

func (m *mockSessionManager) Create(ctx context.Context, info models.AccountInfo) (string, error) {
	return m.createFn(ctx, info)
}

func (m *mockSessionManager) Read(ctx context.Context, token string) (*models.SessionData, error) {
	return m.readFn(ctx, token)
}

func (m *mockSessionManager) Delete(ctx context.Context, token string) error {
	return m.deleteFn(ctx, token)
}

func (m *mockSessionManager) Validate(ctx context.Context, token string) (*models.SessionData, error) {
	return m.validateFn(ctx, token)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testAPIKey       = "test-api-key"
	testSessionToken = "test-session-token"
)

// liveSessionManager validates testSessionToken to a fixed live session.
func liveSessionManager() *mockSessionManager {
	return &mockSessionManager{
		validateFn: func(_ context.Context, token string) (*models.SessionData, error) {
			if token != testSessionToken {
				return nil, nil
			}
			return &models.SessionData{
				SessionID:   "abc",
				SessionInfo: models.AccountInfo{ID: 42, UserName: "alice"},
			}, nil
		},
	}
}

// newTestServer builds the full router over the given mocks and returns a
// running test server.
func newTestServer(t *testing.T, services *service.Services, sessions service.SessionManager) *httptest.Server {
	t.Helper()

	handler := NewHandler(services, sessions, config.App{APIKey: testAPIKey}, logger.Nop())
	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv
}

// doRequest performs a request with the API key set and returns the response.
func doRequest(t *testing.T, srv *httptest.Server, method, path, body string, headers map[string]string) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)

	req.Header.Set(apiKeyHeader, testAPIKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// decodeEnvelope deserializes the uniform response envelope, returning the
// raw result for the caller to re-decode into the expected payload shape.
func decodeEnvelope(t *testing.T, resp *http.Response) (models.Envelope, json.RawMessage) {
	t.Helper()

	var raw struct {
		Result       json.RawMessage `json:"result"`
		Pagination   map[string]any  `json:"pagination"`
		ResponseID   string          `json:"response_id"`
		ResponseTime string          `json:"response_time"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))

	envelope := models.Envelope{
		Pagination:   raw.Pagination,
		ResponseID:   raw.ResponseID,
		ResponseTime: raw.ResponseTime,
	}

	return envelope, raw.Result
}

// decodeErrorPayload re-decodes an envelope result as the fixed error body.
func decodeErrorPayload(t *testing.T, result json.RawMessage) models.ErrorPayload {
	t.Helper()

	var payload models.ErrorPayload
	require.NoError(t, json.Unmarshal(result, &payload))

	return payload
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return string(b)
}
