// Package notify delivers user notifications. Two transports are provided:
// direct SMTP and an HTTP notification gateway; the configuration decides
// which one a deployment uses.
package notify

import "context"

// Message is one outbound user communication.
type Message struct {
	Subject   string
	Body      string
	Recipient string

	// Route selects a delivery template/channel on the receiving side
	// (e.g. the password-recovery route). Empty means the default route.
	Route string

	// Context carries route-specific payload the receiving side interpolates
	// into the message (e.g. the temporary password).
	Context string
}

// Notifier delivers a message to a user. Implementations report delivery
// failure through the error; callers record the outcome on the notification
// row and never retry.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
