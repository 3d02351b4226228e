package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/models"
)

// Manager owns the session lifecycle: minting identifiers, wrapping them in
// signed tokens, and persisting session payloads in the key-value store with
// a sliding TTL.
//
// A session token is live only while all three hold: its signature verifies,
// its embedded expiry has not passed, and the backing store entry still
// exists. The store entry TTL is refreshed on every read; the token expiry
// is fixed at creation and caps the total session lifetime.
type Manager struct {
	kv    KV
	codec *Codec

	// cookieName is the claim key under which the session identifier is
	// embedded in the token.
	cookieName string
	ttl        time.Duration

	logger *logger.Logger
}

// NewManager constructs a session Manager over the given store and codec.
func NewManager(kv KV, codec *Codec, cookieName string, ttl time.Duration, log *logger.Logger) *Manager {
	log.Debug().Msg("creating session manager")
	return &Manager{
		kv:         kv,
		codec:      codec,
		cookieName: cookieName,
		ttl:        ttl,
		logger:     log,
	}
}

// Create mints a random session identifier, encodes it into a signed token
// under the configured cookie-name claim, and stores the session payload
// under the token string with the configured TTL.
//
// Returns the token; the caller hands it to the client as the session
// capability.
func (m *Manager) Create(ctx context.Context, info models.AccountInfo) (string, error) {
	sessionID := newSessionID()

	token, err := m.codec.Encode(map[string]any{m.cookieName: sessionID})
	if err != nil {
		return "", fmt.Errorf("encoding session token: %w", err)
	}

	data := models.SessionData{
		SessionID:   sessionID,
		SessionInfo: info,
	}
	serialized, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("serializing session data: %w", err)
	}

	if err := m.kv.Set(ctx, token, string(serialized), m.ttl); err != nil {
		return "", fmt.Errorf("persisting session: %w", err)
	}

	return token, nil
}

// Read looks the token up in the store. When present, the entry's TTL is
// refreshed (sliding-window renewal) and the deserialized session data is
// returned. When absent — deleted, expired, or never created — Read returns
// (nil, nil): absence is an expected state, not an error, and callers must
// check for it.
func (m *Manager) Read(ctx context.Context, token string) (*models.SessionData, error) {
	if strings.TrimSpace(token) == "" {
		return nil, nil
	}

	serialized, ok, err := m.kv.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	if err := m.kv.Expire(ctx, token, m.ttl); err != nil {
		// The session is still readable; losing one TTL refresh only
		// shortens the sliding window.
		logger.FromContext(ctx).Err(err).Msg("session ttl refresh failed")
	}

	var data models.SessionData
	if err := json.Unmarshal([]byte(serialized), &data); err != nil {
		return nil, fmt.Errorf("deserializing session data: %w", err)
	}

	return &data, nil
}

// Delete removes the session entry. Deleting a token with no backing entry
// is not an error; logout is idempotent.
func (m *Manager) Delete(ctx context.Context, token string) error {
	if err := m.kv.Delete(ctx, token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	return nil
}

// Validate checks the full session invariant for a presented token:
// signature, embedded expiry, and the existence of a live store entry.
// A structurally valid token whose backing entry was deleted or expired is
// rejected with (nil, nil).
func (m *Manager) Validate(ctx context.Context, token string) (*models.SessionData, error) {
	if _, err := m.codec.Decode(token); err != nil {
		return nil, err
	}

	return m.Read(ctx, token)
}

// newSessionID returns an opaque 32-char hex string (a dash-stripped UUID).
func newSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
