package apperrors

import (
	"errors"
	"fmt"
)

// Common application errors with proper types for error handling

var (
	// ErrValidation indicates one or more order field rules were violated
	ErrValidation = errors.New("validation failed")

	// ErrDelivery indicates the notification sink could not accept the message
	ErrDelivery = errors.New("delivery failed")

	// ErrNotFound indicates no route or resource matched the request
	ErrNotFound = errors.New("not found")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")
)

// DeliveryError wraps a sink failure so callers can match it with errors.Is
func DeliveryError(err error) error {
	return fmt.Errorf("%w: %w", ErrDelivery, err)
}

// InternalError creates an internal error with context
func InternalError(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInternal)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}
