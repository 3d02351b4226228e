package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec encodes and decodes the signed, time-limited session tokens handed
// to clients. Tokens are compact HMAC-SHA256 JWS strings carrying the caller
// payload plus injected "exp" and "iss" claims.
//
// The zero value is not usable; construct with [NewCodec]. A Codec is safe
// for concurrent use; all state is read-only after construction.
type Codec struct {
	signKey  string
	issuer   string
	lifetime time.Duration

	// now is the clock source; replaced in tests to simulate expiry.
	now func() time.Time
}

// NewCodec constructs a Codec signing with signKey, stamping issuer into the
// "iss" claim, and expiring tokens lifetime after issuance.
func NewCodec(signKey, issuer string, lifetime time.Duration) *Codec {
	return &Codec{
		signKey:  signKey,
		issuer:   issuer,
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Encode attaches an expiry timestamp (now + configured session lifetime)
// and the issuer tag to payload, then produces the signed compact token
// string. The input map is not mutated.
//
// Returns [ErrEmptyPayload] when payload carries no keys.
func (c *Codec) Encode(payload map[string]any) (string, error) {
	if len(payload) == 0 {
		return "", ErrEmptyPayload
	}

	claims := make(jwt.MapClaims, len(payload)+2)
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(c.now().Add(c.lifetime))
	claims["iss"] = c.issuer

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.signKey))
	if err != nil {
		return "", fmt.Errorf("error signing session token: %w", err)
	}

	return signed, nil
}

// Decode verifies the signature, expiry, and issuer of tokenString and
// returns the embedded claims. Any verification failure is normalised to
// [ErrTokenInvalidOrExpired]; callers are not given the low-level cause.
// No retries; a failed decode is terminal for the request.
func (c *Codec) Decode(tokenString string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(c.signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, ErrTokenInvalidOrExpired
	}

	return claims, nil
}
