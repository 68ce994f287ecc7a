package handler

import (
	"errors"
	"fmt"
	"net/http"

	"storefront-be/internal/apperr"
	"storefront-be/internal/httpx"
	"storefront-be/internal/verification"
)

type sendCodeRequest struct {
	Phone string `json:"phone" validate:"required,krmobile"`
}

type verifyCodeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type verificationView struct {
	Stage         verification.Stage `json:"stage"`
	Phone         string             `json:"phone,omitempty"`
	VerifiedPhone string             `json:"verifiedPhone,omitempty"`
	Remaining     int                `json:"remaining"`
	CanResend     bool               `json:"canResend"`
}

func (h *Handler) viewFlow(f *verification.Flow) verificationView {
	now := h.now()
	stage := f.Stage
	if stage == "" {
		stage = verification.StageIdle
	}
	return verificationView{
		Stage:         stage,
		Phone:         f.Phone,
		VerifiedPhone: f.VerifiedPhone,
		Remaining:     f.Remaining(now),
		CanResend:     f.CanResend(now),
	}
}

func (h *Handler) GetVerification(w http.ResponseWriter, r *http.Request) {
	st, err := h.loadState(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.viewFlow(&st.Verification))
}

// SendVerification issues a code to the phone and starts the resend cooldown.
func (h *Handler) SendVerification(w http.ResponseWriter, r *http.Request) {
	var in sendCodeRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	st, err := h.loadState(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	now := h.now()
	if err := st.Verification.Send(r.Context(), h.Verification, in.Phone, now); err != nil {
		if errors.Is(err, verification.ErrCooldownActive) {
			msg := fmt.Sprintf("%d초 후에 재발송할 수 있습니다.", st.Verification.Remaining(now))
			h.fail(w, r, apperr.Validation(msg, err))
			return
		}
		h.fail(w, r, err)
		return
	}

	if err := h.saveState(r, st); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.viewFlow(&st.Verification))
}

func (h *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var in verifyCodeRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	st, err := h.loadState(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if _, err := st.Verification.Verify(r.Context(), h.Verification, in.Code); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.saveState(r, st); err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.viewFlow(&st.Verification))
}
