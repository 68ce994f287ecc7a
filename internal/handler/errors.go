package handler

import (
	"errors"
	"net/http"

	"storefront-be/internal/apperr"
	"storefront-be/internal/auth"
	"storefront-be/internal/cart"
	"storefront-be/internal/checkout"
	"storefront-be/internal/httpx"
	"storefront-be/internal/order"
	"storefront-be/internal/payment"
	"storefront-be/internal/product"
	"storefront-be/internal/shipping"
	"storefront-be/internal/user"
	"storefront-be/internal/verification"
)

var errorKinds = []struct {
	target error
	kind   apperr.Kind
}{
	{product.ErrProductNotFound, apperr.KindNotFound},
	{product.ErrInvalidCategory, apperr.KindValidation},
	{product.ErrInvalidPrice, apperr.KindValidation},

	{cart.ErrInvalidItem, apperr.KindValidation},
	{cart.ErrCartEmpty, apperr.KindValidation},
	{cart.ErrCartItemNotFound, apperr.KindNotFound},
	{cart.ErrFailedLoadCart, apperr.KindExternal},
	{cart.ErrFailedSaveCart, apperr.KindExternal},

	{user.ErrInvalidInput, apperr.KindValidation},
	{user.ErrEmailExists, apperr.KindConflict},
	{user.ErrConsumerIDTaken, apperr.KindConflict},
	{user.ErrInvalidCredentials, apperr.KindUnauthorized},
	{user.ErrUserNotFound, apperr.KindNotFound},

	{verification.ErrInvalidPhone, apperr.KindValidation},
	{verification.ErrCodeRequired, apperr.KindValidation},
	{verification.ErrCooldownActive, apperr.KindValidation},
	{verification.ErrNotRequested, apperr.KindValidation},
	{verification.ErrNotVerified, apperr.KindValidation},
	{verification.ErrCodeInvalid, apperr.KindNotFound},
	{verification.ErrSendFailed, apperr.KindExternal},

	// wrapping sentinels come first so their kind wins over the cause's
	{order.ErrSMSFailed, apperr.KindExternal},
	{order.ErrTrackingSaveFailed, apperr.KindExternal},
	{order.ErrMissingFields, apperr.KindValidation},
	{order.ErrInvalidAmount, apperr.KindValidation},
	{order.ErrAmountMismatch, apperr.KindValidation},
	{order.ErrOrderNotFound, apperr.KindNotFound},
	{order.ErrInvalidTransition, apperr.KindConflict},
	{order.ErrTrackingNotAllowed, apperr.KindConflict},

	{checkout.ErrConfirmInProgress, apperr.KindConflict},
	{checkout.ErrPaymentNotRecorded, apperr.KindInternal},
	{checkout.ErrMissingCustomer, apperr.KindValidation},
	{checkout.ErrInvalidConfirm, apperr.KindValidation},
	{checkout.ErrAmountMismatch, apperr.KindValidation},

	{shipping.ErrTrackingNumberRequired, apperr.KindValidation},
	{shipping.ErrLookupFailed, apperr.KindExternal},

	{auth.ErrMissingSecret, apperr.KindInternal},
}

const paymentFailedMessage = "결제 승인에 실패했습니다."

// classify turns a domain error into an *apperr.Error whose message is the
// matched sentinel's text. Unknown errors are returned as they are.
func classify(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}

	var perr *payment.ProviderError
	if errors.As(err, &perr) {
		msg := perr.Message
		if msg == "" {
			msg = paymentFailedMessage
		}
		if perr.Status >= 400 && perr.Status < 500 {
			return apperr.Validation(msg, err)
		}
		return apperr.External(msg, err)
	}
	if errors.Is(err, checkout.ErrConfirmFailed) {
		return apperr.External(paymentFailedMessage, err)
	}

	for _, e := range errorKinds {
		if errors.Is(err, e.target) {
			return apperr.New(e.kind, e.target.Error(), err)
		}
	}
	return err
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	httpx.WriteError(w, r, classify(err))
}
