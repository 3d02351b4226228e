package models

import "time"

// NotificationTemplate is a reusable subject/body pair identified by a code
// (e.g. "PASSWORD_RECOVERY"). Templates are seeded by migrations and looked
// up by code when a flow needs to notify a user.
type NotificationTemplate struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// Notification records one user communication triggered by a flow (e.g.
// password recovery). Sent is flipped exactly once to reflect the delivery
// outcome reported by the notifier.
type Notification struct {
	ID          int64     `json:"id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	TemplateID  int64     `json:"template_id"`
	SenderID    int64     `json:"sender_id"`
	ReceiverID  int64     `json:"receiver_id"`
	Sent        bool      `json:"sent"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table backing the Notification model.
func (n Notification) TableName() string {
	return "notification"
}
