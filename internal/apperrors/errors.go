package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials indicates a failed login attempt. The same error covers
// an unknown identifier and a wrong password so callers cannot enumerate users.
var ErrInvalidCredentials = errors.New("invalid email/username or password")

// ErrUnauthorized indicates that the request lacks valid authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUserBanned indicates that the target user is banned.
var ErrUserBanned = errors.New("user is banned")

// ErrTokenInvalid indicates a malformed or tampered token.
var ErrTokenInvalid = errors.New("invalid token")

// ErrTokenExpired indicates a token past its expiry.
var ErrTokenExpired = errors.New("token expired")

// AppError carries an HTTP status code alongside a message and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
