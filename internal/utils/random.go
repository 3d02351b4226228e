package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
)

const (
	resetCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	passwordAlphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"
)

// GenerateResetCode returns a random code of length n drawn from an
// unambiguous uppercase alphabet (no O/0, I/1 confusion). Used for the
// out-of-band password reset codes.
func GenerateResetCode(n int) (string, error) {
	return randomFromAlphabet(n, resetCodeAlphabet)
}

// GenerateRandomPassword returns a random password of length n used by the
// forced-recovery flow before the user picks their own.
func GenerateRandomPassword(n int) (string, error) {
	return randomFromAlphabet(n, passwordAlphabet)
}

func randomFromAlphabet(n int, alphabet string) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid random string length %d", n)
	}

	var b strings.Builder
	b.Grow(n)
	alphabetLen := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		b.WriteByte(alphabet[idx.Int64()])
	}

	return b.String(), nil
}

// DecodeTransportPassword decodes the base64 transport encoding applied to
// passwords by clients before submission. Returns an error for payloads that
// are not valid base64.
func DecodeTransportPassword(encoded string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", fmt.Errorf("decode transport password: %w", err)
	}

	return string(decoded), nil
}
