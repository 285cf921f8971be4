package user

import "errors"

var (
	// -- Credentials --
	ErrEmailExists     = errors.New("email already registered")
	ErrUserNotFound    = errors.New("no user found for that email")
	ErrInvalidPassword = errors.New("invalid password")

	// -- Password reset --
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrInvalidResetToken = errors.New("reset token is invalid or expired")

	// -- Permissions --
	ErrUnknownPermission = errors.New("unknown permission label")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
