package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists. The unique
	// index on users.username is the authority; there is no pre-check.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup by username produces an
	// empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSecretNotFound is returned when a query or conditional update
	// targets a secret id that does not exist in the database.
	ErrSecretNotFound = errors.New("secret was not found")

	// ErrSecretAlreadyViewed is returned by the conditional viewed-flag
	// update when the row exists but the flag was already set. Exactly one
	// caller per secret ever avoids this error.
	ErrSecretAlreadyViewed = errors.New("secret was already viewed")

	// ErrSecretNotSaved is returned when an INSERT of a secret completes
	// without a driver error but affects zero rows.
	ErrSecretNotSaved = errors.New("secret was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
