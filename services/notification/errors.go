package notification

import "fmt"

// ValidationError reports missing or malformed input. Handlers translate it
// into a 400 response.
type ValidationError struct {
	message string
}

func (e ValidationError) Error() string {
	return e.message
}

// NewValidationError returns a new ValidationError.
func NewValidationError(formatString string, a ...interface{}) ValidationError {
	return ValidationError{message: fmt.Sprintf(formatString, a...)}
}

// NotFoundError reports that no row matched the requested (id, owner) pair,
// or that the owner account does not exist. Handlers translate it into a 404
// response.
type NotFoundError struct {
	message string
}

func (e NotFoundError) Error() string {
	return e.message
}

// NewNotFoundError returns a new NotFoundError.
func NewNotFoundError(formatString string, a ...interface{}) NotFoundError {
	return NotFoundError{message: fmt.Sprintf(formatString, a...)}
}

// StoreError wraps an underlying persistence failure. Handlers translate it
// into a 500 response.
type StoreError struct {
	message string
	cause   error
}

func (e StoreError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause)
	}
	return e.message
}

func (e StoreError) Unwrap() error {
	return e.cause
}

// NewStoreError returns a new StoreError wrapping cause.
func NewStoreError(cause error, formatString string, a ...interface{}) StoreError {
	return StoreError{message: fmt.Sprintf(formatString, a...), cause: cause}
}
