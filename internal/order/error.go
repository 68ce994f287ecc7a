package order

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields  = errors.New("required order fields are missing")
	ErrInvalidAmount  = errors.New("order amount must be positive")
	ErrAmountMismatch = errors.New("amount does not match the order")

	// -- Resource State --
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("order status transition not allowed")
	ErrTrackingNotAllowed = errors.New("tracking number can only be set once on a completed order")

	// -- External --
	ErrSMSFailed          = errors.New("sms send failed")
	ErrTrackingSaveFailed = errors.New("failed to save tracking number")
)
