package service

import (
	"context"

	"github.com/echoharbor/auth-core/models"
)

// AuthService owns the login and logout flows.
type AuthService interface {
	// Authenticate resolves the account, checks its status flags, verifies the
	// transport-encoded password, establishes a session and logs the event.
	Authenticate(ctx context.Context, param models.AuthenticateParam) (models.AuthenticateResult, error)

	// Logout logs the event and deletes the session. Idempotent: a token with
	// no live session is not an error.
	Logout(ctx context.Context, token string) error
}

// PasswordService owns the five password operations. Every mutating operation
// runs in a single transaction rolled back on any error.
type PasswordService interface {
	RequestReset(ctx context.Context, param models.PasswordParam) error
	ValidateCode(ctx context.Context, param models.PasswordParam) (bool, error)
	Update(ctx context.Context, param models.PasswordParam) error
	Recover(ctx context.Context, param models.AuthenticateParam) error
	Reset(ctx context.Context, param models.PasswordParam) error
}

// RegistrationService owns account creation and the pre-registration probes.
type RegistrationService interface {
	Register(ctx context.Context, profileCode string, param models.RegistrationParam) (models.AccountInfo, error)
	CheckUserName(ctx context.Context, userName string) (bool, error)
	VerifyEmail(ctx context.Context, email string) (int64, bool, error)
}

// SessionManager is the session lifecycle collaborator consumed by the auth
// flow and the token-auth middleware. Implemented by [session.Manager].
type SessionManager interface {
	Create(ctx context.Context, info models.AccountInfo) (string, error)
	Read(ctx context.Context, token string) (*models.SessionData, error)
	Delete(ctx context.Context, token string) error
	Validate(ctx context.Context, token string) (*models.SessionData, error)
}

// TransactionRunner runs a function inside one database transaction carried
// on the context. Implemented by [store.DB].
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
