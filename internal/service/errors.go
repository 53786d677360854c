package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when required fields are missing
	// from a registration or update request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single rejection for every failed login:
	// unknown email and wrong password are deliberately indistinguishable so
	// the login form cannot be used to enumerate registered addresses.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidSession is returned when a presented session token matches
	// no live session: unknown, expired, or belonging to a deleted user.
	ErrInvalidSession = errors.New("invalid or expired session")

	// ErrNotResourceOwner is returned when an authenticated user attempts
	// to modify a profile other than their own.
	ErrNotResourceOwner = errors.New("caller does not own the requested resource")
)
