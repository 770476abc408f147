package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidState       = errors.New("order is not awaiting payment")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrPayloadTooLarge    = errors.New("payload too large")

	// ErrStatusConflict is returned by stores when the compare-and-swap on an order status misses.
	ErrStatusConflict = errors.New("order status changed concurrently")
)

// InvalidTransitionError describes a rejected status move.
type InvalidTransitionError struct {
	OrderID string
	From    string
	To      string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot move from %s to %s", e.OrderID, e.From, e.To)
}

// Is makes errors.Is(err, ErrInvalidTransition) match.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// TooManyAttemptsError carries the remaining lockout.
type TooManyAttemptsError struct {
	RetryAfter time.Duration
}

func (e *TooManyAttemptsError) Error() string {
	return fmt.Sprintf("too many attempts, retry after %s", e.RetryAfter)
}

func (e *TooManyAttemptsError) Is(target error) bool {
	return target == ErrTooManyAttempts
}

// Validation wraps ErrValidation with a field specific message.
func Validation(field, message string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, message)
}
