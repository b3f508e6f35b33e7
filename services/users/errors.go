package users

import "errors"

var (
	// ErrUserNotFound indicates the requested account does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates another account already uses the email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates a failed email/password login
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSelfFollow indicates a user tried to follow themselves
	ErrSelfFollow = errors.New("cannot follow yourself")
)
