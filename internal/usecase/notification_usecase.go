package usecase

import (
	"context"
	"fmt"

	"visitadoras/internal/domain/service"

	"github.com/pkg/errors"
)

// DispatchResult summarizes the push fan-out of one event.
type DispatchResult struct {
	Recipients    int
	SuccessCount  int
	FailureCount  int
	InvalidTokens int
}

// NotificationUsecase turns domain events into push notifications.
type NotificationUsecase interface {
	// Dispatch resolves the recipients of an event and notifies their devices.
	// Errors that a redelivery could fix satisfy IsRetryable.
	Dispatch(ctx context.Context, event *service.Event) (*DispatchResult, error)
}

// retryableError marks a failure that should trigger a Pub/Sub redelivery.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable.
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
