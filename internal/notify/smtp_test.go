package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("Auth Core <no-reply@example.com>", "a@x.com", "Password Reset - CODE", "Your password reset code is: AB12")

	lines := strings.Split(msg, "\r\n")
	assert.Equal(t, "From: Auth Core <no-reply@example.com>", lines[0])
	assert.Equal(t, "To: a@x.com", lines[1])
	assert.Equal(t, "Subject: Password Reset - CODE", lines[2])

	// Headers and body are separated by a blank line.
	assert.Contains(t, msg, "\r\n\r\nYour password reset code is: AB12")
}

func TestBuildMessage_DeclaresPlainTextUTF8(t *testing.T) {
	msg := buildMessage("no-reply@example.com", "a@x.com", "s", "b")

	assert.Contains(t, msg, "MIME-Version: 1.0")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=utf-8")
}
