package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailTaken is returned when an insert or update would violate the
	// unique constraint on the users.email column. The constraint is the
	// authoritative duplicate check: a lookup-before-insert alone would
	// leave a race window between two concurrent registrations.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set, or when an update touches
	// zero rows.
	ErrUserNotFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when no session row matches the
	// presented token. Expired sessions that have been lazily removed
	// surface as this error too.
	ErrSessionNotFound = errors.New("no session was found")

	// ErrQueryTimeout is returned when a database operation is abandoned
	// because the request-level deadline expired. Handlers surface it as a
	// generic failure page; the detail stays in the server log.
	ErrQueryTimeout = errors.New("database query timed out")
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
