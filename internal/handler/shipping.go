package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront-be/internal/httpx"
)

func (h *Handler) TrackShipment(w http.ResponseWriter, r *http.Request) {
	info, err := h.Shipping.Track(r.Context(), chi.URLParam(r, "trackingNumber"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, info)
}
