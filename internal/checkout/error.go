package checkout

import (
	"errors"

	"storefront-be/internal/cart"
	"storefront-be/internal/verification"
)

var (
	// -- Validation & Input --
	ErrEmptyCart        = cart.ErrCartEmpty
	ErrMissingCustomer  = errors.New("customer name, email and phone are required")
	ErrPhoneNotVerified = verification.ErrNotVerified
	ErrInvalidConfirm   = errors.New("paymentKey, orderId and amount are required")
	ErrAmountMismatch   = errors.New("payment amount does not match the order")

	// -- Resource State --
	ErrConfirmInProgress = errors.New("payment confirmation already in progress")

	// -- External --
	ErrConfirmFailed = errors.New("payment confirmation failed")

	// -- Internal --
	ErrPaymentNotRecorded = errors.New("payment was captured but the order could not be updated")
)
