package service

import (
	"context"

	"github.com/ivolkov/accountdesk/models"
)

// RegisterInput carries the raw registration form fields into the
// authentication service.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService owns the credential-and-session lifecycle: registration,
// credential verification, and session principal management.
type AuthService interface {
	// Register creates a new account. The password is hashed before
	// persistence; registration never opens a session.
	// Errors: [ErrInvalidDataProvided], [store.ErrEmailTaken], wrapped
	// storage errors.
	Register(ctx context.Context, input RegisterInput) (models.User, error)

	// Login verifies the submitted credentials and returns the matching
	// user. Unknown email and wrong password both yield
	// [ErrInvalidCredentials].
	Login(ctx context.Context, email, password string) (models.User, error)

	// OpenSession establishes a session principal for user and returns it
	// (including the token handed to the client as a cookie).
	OpenSession(ctx context.Context, user models.User) (models.Session, error)

	// Authenticate resolves a session token to the user it authenticates.
	// Any unusable token — unknown, expired, or orphaned — yields
	// [ErrInvalidSession].
	Authenticate(ctx context.Context, token string) (models.User, error)

	// Logout destroys the session identified by token. Idempotent.
	Logout(ctx context.Context, token string) error
}

// ProfileService reads and updates user profiles.
type ProfileService interface {
	// Profile fetches the user with the given id.
	// Errors: [store.ErrUserNotFound], wrapped storage errors.
	Profile(ctx context.Context, id string) (models.User, error)

	// UpdateProfile applies a name/email edit to the profile identified by
	// targetID on behalf of callerID. The caller must own the target
	// profile ([ErrNotResourceOwner]); the password is never touched.
	// Errors: [ErrNotResourceOwner], [ErrInvalidDataProvided],
	// [store.ErrUserNotFound], [store.ErrEmailTaken].
	UpdateProfile(ctx context.Context, callerID, targetID, name, email string) error
}

// PasswordHasher is the one-way hash primitive the authentication service
// depends on. Implemented by [utils.PasswordHasher] (bcrypt).
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
