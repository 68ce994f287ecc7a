package handler

import (
	"net/http"
	"strconv"

	"storefront-be/internal/httpx"
	"storefront-be/internal/shipping"
	"storefront-be/internal/user"
	"storefront-be/internal/utils"
)

// MyOrders lists the signed-in customer's orders, newest first.
func (h *Handler) MyOrders(w http.ResponseWriter, r *http.Request) {
	email := utils.GetUserEmailFromContext(r.Context())
	if email == "" {
		id, err := currentUserID(r)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		u, err := h.Users.GetByID(r.Context(), id)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		email = u.Email
	}

	orders, err := h.Orders.ListForCustomer(r.Context(), email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) AdminOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListAll(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

type backfillResponse struct {
	Message      string                `json:"message"`
	SuccessCount int                   `json:"successCount"`
	FailureCount int                   `json:"failureCount"`
	Results      []user.BackfillResult `json:"results"`
}

// BackfillConsumerIDs assigns a consumer id to every user that lacks one.
func (h *Handler) BackfillConsumerIDs(w http.ResponseWriter, r *http.Request) {
	results, err := h.Users.BackfillConsumerIDs(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if len(results) == 0 {
		httpx.WriteJSON(w, http.StatusOK, backfillResponse{
			Message: "모든 사용자에게 이미 consumer_id가 있습니다.",
			Results: []user.BackfillResult{},
		})
		return
	}

	resp := backfillResponse{Results: results}
	for _, res := range results {
		if res.Success {
			resp.SuccessCount++
		} else {
			resp.FailureCount++
		}
	}
	resp.Message = strconv.Itoa(resp.SuccessCount) + "명의 사용자에게 consumer_id를 생성했습니다."
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// GenerateTrackingNumber proposes a fresh tracking number for the admin form.
func (h *Handler) GenerateTrackingNumber(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"trackingNumber": shipping.GenerateTrackingNumber(h.now()),
	})
}
