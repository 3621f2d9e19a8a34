package errors

import (
	"errors"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the response shape cannot leak which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAccountLocked            = errors.New("account temporarily locked")
	ErrAccountInactive          = errors.New("account is deactivated")
	ErrNotFound                 = errors.New("resource not found")
	ErrTokenInvalidOrExpired    = errors.New("reset token is invalid or expired")
	ErrEmailDelivery            = errors.New("failed to send email")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrEmailAlreadyInUse        = errors.New("email already in use")
	ErrSelfDeletion             = errors.New("cannot delete own account")
	ErrForbidden                = errors.New("insufficient role")
)
