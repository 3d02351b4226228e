package http

import "errors"

// Header-authentication errors. These are the only failures answered with
// HTTP 400; every business failure travels inside a 200 envelope.
var (
	ErrMissingAPIKey     = errors.New("missing X-Api-Key header")
	ErrInvalidAPIKey     = errors.New("invalid api key")
	ErrMissingTokenAuth  = errors.New("missing X-Token-Auth header")
	ErrInvalidTokenAuth  = errors.New("invalid or expired session token")
)
