package store

import "errors"

var (
	// ErrInvalidCredentials means no user matched the sign-in email.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailAlreadyInUse means the sign-up email collides with an
	// existing user, compared case-insensitively.
	ErrEmailAlreadyInUse = errors.New("email already in use")
)
