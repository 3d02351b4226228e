package models

// AccountUpdate describes a partial mutation of an authentication row.
// Nil pointer fields are left untouched; the password flows use this to
// change only the columns each operation owns. Clearing the reset code is
// expressed by setting ResetCode to the empty string.
type AccountUpdate struct {
	ID int64

	PasswordHash  *string
	ResetPassword *bool
	ResetCode     *string
}

// IsEmpty reports whether the update carries no column changes.
func (u AccountUpdate) IsEmpty() bool {
	return u.PasswordHash == nil && u.ResetPassword == nil && u.ResetCode == nil
}
