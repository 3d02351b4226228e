package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when a lookup by id, email, or username
	// produces an empty result set.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrAccountAlreadyExists is returned when registering an account whose
	// email or username collides with an existing row.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrTemplateNotFound is returned when a notification template code has
	// no matching row.
	ErrTemplateNotFound = errors.New("notification template was not found")

	// ErrNotificationNotFound is returned when marking the delivery outcome
	// of a notification that does not exist.
	ErrNotificationNotFound = errors.New("notification was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no columns to update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
