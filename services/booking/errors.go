package booking

import "errors"

// ErrSessionNotFound is returned when a wizard session is missing or its
// TTL has elapsed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError is a user-facing rule violation (missing required field,
// past date). It is reported inline, never as a server fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err is a wizard validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
