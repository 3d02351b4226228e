package models

import "time"

// AuthEvent enumerates the kinds of entries written to the authentication log.
type AuthEvent string

const (
	AuthEventLoggedIn  AuthEvent = "logged_in"
	AuthEventLoggedOut AuthEvent = "logged_out"
)

// AuthLog is one append-only entry in the "authentication_log" table.
// An entry is written for every login/logout attempt that reaches the
// logging step; entries are never updated or deleted.
type AuthLog struct {
	ID          int64     `json:"id"`
	AuthID      int64     `json:"auth_id"`
	IPAddress   string    `json:"ip_address"`
	Description string    `json:"description"`
	Event       AuthEvent `json:"auth_event"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table backing the AuthLog model.
func (l AuthLog) TableName() string {
	return "authentication_log"
}
