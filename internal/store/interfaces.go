package store

import (
	"context"
	"time"

	"github.com/ivolkov/accountdesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser assigns an ID and creation timestamp, inserts the record
	// and returns the persisted user. A duplicate email surfaces as
	// [ErrEmailTaken].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by exact email match.
	// Returns [ErrUserNotFound] when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by its opaque identifier.
	// Returns [ErrUserNotFound] when no record matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateUserFields applies a partial update of the mutable fields
	// (name, email). Returns [ErrUserNotFound] when id matches no record
	// and [ErrEmailTaken] when the new email is already registered.
	// The password hash is never touched by this operation.
	UpdateUserFields(ctx context.Context, id string, update models.UserUpdate) error
}

// SessionRepository is the persistence contract for session principals.
type SessionRepository interface {
	// CreateSession inserts a new session row.
	CreateSession(ctx context.Context, session models.Session) error

	// FindSessionByToken retrieves the session identified by token.
	// Returns [ErrSessionNotFound] when the token matches nothing.
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)

	// DeleteSessionByToken destroys the session identified by token.
	// Deleting an already-absent session is not an error.
	DeleteSessionByToken(ctx context.Context, token string) error

	// DeleteExpiredSessions removes every session whose expiry is before
	// now and reports how many rows were deleted.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
