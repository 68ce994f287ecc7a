package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront-be/internal/apperr"
	"storefront-be/internal/httpx"
	"storefront-be/internal/order"
)

const smsFailedMessage = "SMS 발송에 실패했습니다."

type smsSendRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type smsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// decodeSMS reads an SMS request body; a malformed body is reported with the
// endpoint's missing-fields message.
func decodeSMS(r *http.Request, dst any, missing string) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation(missing, err)
	}
	return nil
}

// smsError keeps the endpoint's own wording for the 400 and 500 cases.
func smsError(err error, missing string) error {
	switch {
	case errors.Is(err, order.ErrMissingFields):
		return apperr.Validation(missing, err)
	case errors.Is(err, order.ErrSMSFailed):
		return apperr.External(smsFailedMessage, err)
	case errors.Is(err, order.ErrTrackingSaveFailed):
		return apperr.External("송장번호 업데이트에 실패했습니다.", err)
	}
	return err
}

func (h *Handler) SendVerificationSMS(w http.ResponseWriter, r *http.Request) {
	const missing = "휴대폰 번호와 인증 코드가 필요합니다."

	var in smsSendRequest
	if err := decodeSMS(r, &in, missing); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.Orders.SendVerificationSMS(r.Context(), in.Phone, in.Code); err != nil {
		h.fail(w, r, smsError(err, missing))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, smsResponse{Success: true, Message: "인증 코드가 발송되었습니다."})
}

func (h *Handler) SendPaymentCompleteSMS(w http.ResponseWriter, r *http.Request) {
	const missing = "주문 정보가 필요합니다."

	var in order.PaymentCompleteRequest
	if err := decodeSMS(r, &in, missing); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.Orders.SendPaymentCompleteSMS(r.Context(), in); err != nil {
		h.fail(w, r, smsError(err, missing))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, smsResponse{Success: true, Message: "결제 완료 SMS가 발송되었습니다."})
}

func (h *Handler) SendTrackingSMS(w http.ResponseWriter, r *http.Request) {
	const missing = "주문 정보와 송장번호가 필요합니다."

	var in order.TrackingRequest
	if err := decodeSMS(r, &in, missing); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.Orders.SendTrackingSMS(r.Context(), in); err != nil {
		h.fail(w, r, smsError(err, missing))
		return
	}
	httpx.WriteJSON(w, http.StatusOK, smsResponse{Success: true, Message: "송장번호 SMS가 발송되었습니다."})
}
