package apperrors

import "errors"

// Numeric error codes carried on fail envelopes. These are part of the
// public API contract and must not be renumbered.
const (
	CodeValidation          = 1
	CodeInstitutionNotFound = 1000
	CodeUserNotFound        = 2000
	CodeBookNotFound        = 3000
	CodeAuthorNotFound      = 4000
)

// Domain errors
var (
	ErrValidationFailed    = errors.New("validation error")
	ErrInstitutionNotFound = errors.New("institution not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrBookNotFound        = errors.New("book not found")
	ErrAuthorNotFound      = errors.New("author not found")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
)

// CodeFor maps a domain error to its envelope code. The second return is
// false for errors outside the coded taxonomy (collaborator failures keep
// their raw message and carry no code).
func CodeFor(err error) (int, bool) {
	switch {
	case errors.Is(err, ErrValidationFailed):
		return CodeValidation, true
	case errors.Is(err, ErrInstitutionNotFound):
		return CodeInstitutionNotFound, true
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound, true
	case errors.Is(err, ErrBookNotFound):
		return CodeBookNotFound, true
	case errors.Is(err, ErrAuthorNotFound):
		return CodeAuthorNotFound, true
	}
	return 0, false
}

// ValidationError wraps ErrValidationFailed with the field-level message
// produced by the validation schema.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error carrying a human-readable
// field message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
