// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, password
// hashing and verification, random code generation, transport decoding,
// and HTTP response writing.
package utils

import (
	"context"

	"github.com/echoharbor/auth-core/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which middleware stores the session data
// resolved from the X-Token-Auth header. Handlers and services retrieve it
// via GetSessionFromContext instead of re-reading the session store.
var SessionCtxKey = contextKey("userSession")

// LanguageIDCtxKey is the key under which the authentication flow stores the
// derived locale identifier for the in-flight request.
var LanguageIDCtxKey = contextKey("languageID")

// ClientIPCtxKey is the key under which middleware stores the remote client
// address used by the authentication log.
var ClientIPCtxKey = contextKey("clientIP")

// WithSession returns a child context carrying the resolved session data.
func WithSession(ctx context.Context, session models.SessionData) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session data stored by the token-auth
// middleware.
//
// Returns the session and an ok flag:
//   - ok == true  — a session was resolved for this request
//   - ok == false — the request carried no live session
func GetSessionFromContext(ctx context.Context) (models.SessionData, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.SessionData)
	return session, ok
}

// WithLanguageID returns a child context carrying the locale identifier
// derived for the current request.
func WithLanguageID(ctx context.Context, languageID int64) context.Context {
	return context.WithValue(ctx, LanguageIDCtxKey, languageID)
}

// GetLanguageIDFromContext retrieves the request locale, falling back to
// fallback when none was attached.
func GetLanguageIDFromContext(ctx context.Context, fallback int64) int64 {
	if languageID, ok := ctx.Value(LanguageIDCtxKey).(int64); ok {
		return languageID
	}
	return fallback
}

// WithClientIP returns a child context carrying the remote client address.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ClientIPCtxKey, ip)
}

// GetClientIPFromContext retrieves the remote client address recorded by the
// HTTP layer; empty when the request did not pass through it.
func GetClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ClientIPCtxKey).(string)
	return ip
}
