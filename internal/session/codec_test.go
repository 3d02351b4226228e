// SPDX-License-Identifier: Apache-2.0

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "auth-core-test"
)

func newTestCodec(lifetime time.Duration) *Codec {
	return NewCodec(testSignKey, testIssuer, lifetime)
}

func TestCodec_EncodeDecode_RoundTrip(t *testing.T) {
	codec := newTestCodec(30 * time.Minute)

	payload := map[string]any{"x_session_id": "0123456789abcdef"}

	token, err := codec.Encode(payload)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Decode(token)
	require.NoError(t, err)

	// The decoded claims reproduce the payload plus the injected exp/iss.
	assert.Equal(t, "0123456789abcdef", claims["x_session_id"])
	assert.Equal(t, testIssuer, claims["iss"])
	assert.Contains(t, claims, "exp")
}

func TestCodec_Encode_EmptyPayload(t *testing.T) {
	codec := newTestCodec(30 * time.Minute)

	_, err := codec.Encode(map[string]any{})
	assert.ErrorIs(t, err, ErrEmptyPayload)

	_, err = codec.Encode(nil)
	assert.ErrorIs(t, err, ErrEmptyPayload)
}

func TestCodec_Decode_ExpiredToken(t *testing.T) {
	codec := newTestCodec(30 * time.Minute)

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issuedAt }

	token, err := codec.Encode(map[string]any{"x_session_id": "abc"})
	require.NoError(t, err)

	// Still valid just before the lifetime elapses.
	codec.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	_, err = codec.Decode(token)
	require.NoError(t, err)

	// Simulated clock past the lifetime.
	codec.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrTokenInvalidOrExpired)
}

func TestCodec_Decode_WrongSignKey(t *testing.T) {
	token, err := newTestCodec(time.Minute).Encode(map[string]any{"x_session_id": "abc"})
	require.NoError(t, err)

	other := NewCodec("different-key", testIssuer, time.Minute)
	_, err = other.Decode(token)
	assert.ErrorIs(t, err, ErrTokenInvalidOrExpired)
}

func TestCodec_Decode_WrongIssuer(t *testing.T) {
	foreign := NewCodec(testSignKey, "someone-else", time.Minute)
	token, err := foreign.Encode(map[string]any{"x_session_id": "abc"})
	require.NoError(t, err)

	_, err = newTestCodec(time.Minute).Decode(token)
	assert.ErrorIs(t, err, ErrTokenInvalidOrExpired)
}

func TestCodec_Decode_Garbage(t *testing.T) {
	_, err := newTestCodec(time.Minute).Decode("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalidOrExpired)
}
