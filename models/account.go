package models

import "time"

// Profile role identifiers stored in authentication.profile_id.
// They gate branching in the authentication and registration flows.
const (
	RoleAdmin    int64 = 1
	RoleSchool   int64 = 2
	RoleTeacher  int64 = 3
	RoleGuardian int64 = 4
	RoleStudent  int64 = 5
)

// RoleByCode maps the registration path parameter to a profile role id.
var RoleByCode = map[string]int64{
	"admin":    RoleAdmin,
	"school":   RoleSchool,
	"teacher":  RoleTeacher,
	"guardian": RoleGuardian,
	"student":  RoleStudent,
}

// Account is the authentication entity persisted in the "authentication"
// table. PasswordHash holds an argon2id PHC string and must never leave
// trusted boundaries.
type Account struct {
	ID            int64  `json:"id"`
	Email         string `json:"user_email"`
	UserName      string `json:"user_name"`
	PasswordHash  string `json:"-"`
	Active        bool   `json:"is_active"`
	Confirmed     bool   `json:"is_confirmed"`
	ResetPassword bool   `json:"-"`
	ResetCode     string `json:"-"`
	ProfileID     int64  `json:"profile_id"`

	// PersonID links the account to its person/profile row. Zero when the
	// account has no person attached (legacy rows).
	PersonID int64 `json:"person_id,omitempty"`

	// Person is populated by lookups that join the person and school rows.
	// Nil when no person is linked.
	Person *Person `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Person carries the profile attributes the authentication flow needs:
// the locale and the optional school link.
type Person struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LanguageID int64  `json:"language_id"`

	// School is nil for persons not attached to a school.
	School *School `json:"-"`
}

// School gates school-scoped logins: an inactive school, or one whose last
// payment is older than the configured grace window, blocks authentication.
type School struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Active        bool       `json:"is_active"`
	LastPaymentAt *time.Time `json:"-"`
}

// TableName returns the database table backing the Account model.
func (a Account) TableName() string {
	return "authentication"
}

// Info returns the serializable view of the account that is stored in the
// session payload and echoed back to the client after authentication.
func (a Account) Info() AccountInfo {
	info := AccountInfo{
		ID:        a.ID,
		Email:     a.Email,
		UserName:  a.UserName,
		ProfileID: a.ProfileID,
		PersonID:  a.PersonID,
	}
	if a.Person != nil {
		info.PersonName = a.Person.Name
		info.LanguageID = a.Person.LanguageID
	}
	return info
}

// AccountInfo is the wire/session representation of an account. It carries
// no credential material.
type AccountInfo struct {
	ID         int64  `json:"id"`
	Email      string `json:"user_email"`
	UserName   string `json:"user_name"`
	ProfileID  int64  `json:"profile_id"`
	PersonID   int64  `json:"person_id,omitempty"`
	PersonName string `json:"person_name,omitempty"`
	LanguageID int64  `json:"language_id,omitempty"`
}
