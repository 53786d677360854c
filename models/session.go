package models

import "time"

// Session is a server-side login session. The token is the only value the
// client ever holds; deleting the row revokes the session immediately.
type Session struct {
	// Token is the opaque random identifier handed to the client as a
	// cookie. It carries no embedded claims.
	Token string `json:"-"`

	// UserID identifies the user this session authenticates.
	UserID string `json:"user_id"`

	// CreatedAt is the timestamp the session was opened.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the instant after which the session is no longer
	// accepted, regardless of whether the row still exists.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given
// instant.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
