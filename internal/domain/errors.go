package domain

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateUser      = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUnauthenticated    = errors.New("Not authorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")

	// ErrDuplicateKey is a unique index violation other than a user email
	ErrDuplicateKey = errors.New("duplicate key")
)

// Error pairs a taxonomy sentinel with the message shown to the client
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Validation reports a missing or out-of-range field
func Validation(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }

// NotFound reports a referenced record that does not exist for the caller
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Forbidden reports an authenticated caller touching another user's record
func Forbidden(msg string) error { return &Error{Kind: ErrForbidden, Message: msg} }

// Unauthenticated reports a missing, invalid or expired session
func Unauthenticated(msg string) error { return &Error{Kind: ErrUnauthenticated, Message: msg} }
