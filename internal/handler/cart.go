package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront-be/internal/cart"
	"storefront-be/internal/httpx"
)

type quantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (h *Handler) writeCart(w http.ResponseWriter, r *http.Request, view *cart.View, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Carts.Get(r.Context(), sessionID(r))
	h.writeCart(w, r, view, err)
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var in cart.NewItem
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.Carts.AddItem(r.Context(), sessionID(r), in)
	h.writeCart(w, r, view, err)
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var in quantityRequest
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	view, err := h.Carts.UpdateQuantity(r.Context(), sessionID(r), chi.URLParam(r, "id"), *in.Quantity)
	h.writeCart(w, r, view, err)
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	view, err := h.Carts.RemoveItem(r.Context(), sessionID(r), chi.URLParam(r, "id"))
	h.writeCart(w, r, view, err)
}

func (h *Handler) OpenCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Carts.Open(r.Context(), sessionID(r))
	h.writeCart(w, r, view, err)
}

func (h *Handler) CloseCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Carts.Close(r.Context(), sessionID(r))
	h.writeCart(w, r, view, err)
}
