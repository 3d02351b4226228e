package models

// AuthenticateParam is the request body of POST /authenticate and
// POST /user/pwd/recover. Password is base64-encoded for transport;
// services decode it before verifying against the stored hash.
type AuthenticateParam struct {
	UserEmail    string `json:"user_email"`
	UserName     string `json:"user_name"`
	UserPassword string `json:"user_pwd"`
}

// PasswordParam is the request body shared by the password flows.
// Individual operations read only the fields they need.
type PasswordParam struct {
	AuthID       int64  `json:"auth_id"`
	UserEmail    string `json:"user_email"`
	UserPassword string `json:"user_pwd"`
	OldPassword  string `json:"old_pwd"`
	ResetCode    string `json:"reset_code"`
}

// RegistrationParam is the request body of POST /registration/{profile_code}.
type RegistrationParam struct {
	UserEmail    string `json:"user_email"`
	UserName     string `json:"user_name"`
	UserPassword string `json:"user_pwd"`
	PersonName   string `json:"person_name"`
	LanguageID   int64  `json:"language_id"`
}
