package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id does not resolve to an existing row.
// The API layer maps it to a 404.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed field in a write payload.
// The API layer maps it to a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// storageError wraps a storage-layer failure. The original cause is kept for
// logs; callers only see an opaque message.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
