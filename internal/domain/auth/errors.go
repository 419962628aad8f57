package auth

import "errors"

// All token failures surface to the caller as a uniform 401; the
// distinctions below exist for logging only.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAuthHeaderFormat   = errors.New("expected authorization header format: Bearer <token>")
	ErrTokenExpired       = errors.New("token has expired, log in again")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAuthUserNotFound   = errors.New("token subject does not exist")
	ErrUserInactive       = errors.New("user account is not active")
	ErrRefreshFailed      = errors.New("token refresh failed")
	ErrPasswordMismatch   = errors.New("new password and confirmation do not match")
	ErrWrongOldPassword   = errors.New("old password is incorrect")
)
