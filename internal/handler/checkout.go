package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"storefront-be/internal/apperr"
	"storefront-be/internal/checkout"
	"storefront-be/internal/httpx"
	"storefront-be/internal/logger"
	"storefront-be/internal/payment"
)

func (h *Handler) PrepareCheckout(w http.ResponseWriter, r *http.Request) {
	var in checkout.Customer
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	st, err := h.loadState(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	co, err := h.Checkout.Prepare(r.Context(), st, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, co)
}

func (h *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var in payment.ConfirmRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	h.confirm(w, r, in)
}

// PaymentSuccess is where the payment widget redirects after approval:
// /success?paymentKey=...&orderId=...&amount=...
func (h *Handler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := strconv.ParseInt(q.Get("amount"), 10, 64)
	if err != nil {
		h.fail(w, r, apperr.Validation(checkout.ErrInvalidConfirm.Error(), err))
		return
	}
	h.confirm(w, r, payment.ConfirmRequest{
		PaymentKey: q.Get("paymentKey"),
		OrderID:    q.Get("orderId"),
		Amount:     amount,
	})
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request, in payment.ConfirmRequest) {
	res, err := h.Checkout.Confirm(r.Context(), in.PaymentKey, in.OrderID, in.Amount)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	// clearing the cart is best effort once the payment is confirmed
	if st, err := h.loadState(r); err == nil {
		st.Cart.Clear()
		st.Cart.Close()
		if err := h.saveState(r, st); err != nil {
			logger.FromCtx(r.Context()).Warn("failed to clear cart after payment", zap.Error(err))
		}
	}

	httpx.WriteJSON(w, http.StatusOK, res)
}

type failView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}

// PaymentFail is where the widget redirects on error or cancel:
// /fail?code=...&message=...&orderId=...
func (h *Handler) PaymentFail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := failView{Code: q.Get("code"), Message: q.Get("message"), OrderID: q.Get("orderId")}

	if err := h.Checkout.Fail(r.Context(), view.OrderID, view.Code, view.Message); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}
