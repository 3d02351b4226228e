package session

import "errors"

// Sentinel errors returned by the token codec and session manager. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrTokenInvalidOrExpired is returned by [Codec.Decode] for any token
	// whose signature does not verify, whose expiry has passed, or whose
	// issuer does not match. Callers cannot distinguish the three cases;
	// the failure is terminal for the request.
	ErrTokenInvalidOrExpired = errors.New("invalid or expired token")

	// ErrEmptyPayload is returned by [Codec.Encode] when no payload is given.
	ErrEmptyPayload = errors.New("empty token payload")
)
