package payment

import (
	"context"
	"errors"
	"fmt"
)

type Gateway interface {
	Confirm(ctx context.Context, req ConfirmRequest) (*Confirmation, error)
}

var ErrMissingSecret = errors.New("payment secret key is not configured")

// Provider error codes the checkout reacts to.
const (
	CodeAlreadyProcessed  = "ALREADY_PROCESSED_PAYMENT"
	CodeAlreadyProcessing = "ALREADY_PROCESSING_REQUEST"
)

// ProviderError is a non-2xx answer from the payment provider.
type ProviderError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("toss error %d %s: %s", e.Status, e.Code, e.Message)
}

// ProviderCode returns the provider's error code carried by err, if any.
func ProviderCode(err error) (string, bool) {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Code, true
	}
	return "", false
}
