package service

import "errors"

// Business failures surfaced by the flows. The HTTP layer maps each of these
// to a fixed error payload; anything else is logged and collapsed into the
// generic error payload.
var (
	// ErrUserDoesNotExist is returned when neither the email nor the username
	// resolves to an account.
	ErrUserDoesNotExist = errors.New("user does not exist")

	// ErrUserDeactivated is returned when the resolved account is inactive.
	ErrUserDeactivated = errors.New("user deactivated")

	// ErrSchoolDeactivated is returned for school-scoped accounts whose school
	// is inactive or out of its payment grace window.
	ErrSchoolDeactivated = errors.New("school deactivated")

	// ErrInvalidPassword is returned when the submitted password does not
	// match the stored hash, or the account is not confirmed yet.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidAccess is returned by the recovery flow for unconfirmed
	// accounts.
	ErrInvalidAccess = errors.New("invalid access")

	// ErrUnauthorized is returned when completing a password reset on an
	// account whose reset flag is not set.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidEmail is returned when the submitted email does not match the
	// account's email. No state is mutated.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrUserAlreadyExists is returned when registration collides with an
	// existing email or username.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUnknownProfile is returned when the registration path parameter names
	// no known profile role.
	ErrUnknownProfile = errors.New("unknown profile")
)
