package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// persistence layer on creation and immutable afterwards.
	ID string `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique address the user registers and logs in with.
	Email string `json:"email"`

	// PasswordHash stores the user's password representation.
	// This value MUST be a bcrypt hash, never plaintext.
	// It is never exposed via JSON and is used only for authentication.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial edit of a user's mutable fields. A nil
// field is left untouched. The password hash is deliberately absent: a
// profile edit can never change credentials.
type UserUpdate struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil
}
