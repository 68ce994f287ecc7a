package verification

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrCodeRequired = errors.New("verification code is required")

	// -- Lifecycle --
	ErrSendFailed     = errors.New("failed to send verification code")
	ErrCodeInvalid    = errors.New("code incorrect or expired")
	ErrCooldownActive = errors.New("resend cooldown is active")
	ErrNotRequested   = errors.New("no verification code was sent")
	ErrNotVerified    = errors.New("phone number is not verified")
)
