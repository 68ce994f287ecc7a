package handler

import (
	"net/http"

	"storefront-be/internal/apperr"
	"storefront-be/internal/auth"
	"storefront-be/internal/httpx"
	"storefront-be/internal/user"
	"storefront-be/internal/utils"
	"storefront-be/internal/verification"
)

type authResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (h *Handler) setAccessCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// Register creates an account for a phone number this session has verified.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in user.RegisterInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	st, err := h.loadState(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !st.Verification.IsVerified(in.Phone) {
		h.fail(w, r, verification.ErrNotVerified)
		return
	}

	token, u, err := h.Users.Register(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	st.User = u
	st.Verification.Reset()
	if err := h.saveState(r, st); err != nil {
		h.fail(w, r, err)
		return
	}

	h.setAccessCookie(w, token, int(h.Tokens.TTL().Seconds()))
	httpx.WriteJSON(w, http.StatusCreated, authResponse{Token: token, User: u})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in user.LoginInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	token, u, err := h.Users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	st, err := h.loadState(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	st.User = u
	if err := h.saveState(r, st); err != nil {
		h.fail(w, r, err)
		return
	}

	h.setAccessCookie(w, token, int(h.Tokens.TTL().Seconds()))
	httpx.WriteJSON(w, http.StatusOK, authResponse{Token: token, User: u})
}

// Logout forgets the user on this session; the cart stays.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	st, err := h.loadState(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	st.Logout()
	if err := h.saveState(r, st); err != nil {
		h.fail(w, r, err)
		return
	}

	h.setAccessCookie(w, "", -1)
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func currentUserID(r *http.Request) (string, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", apperr.Unauthorized("login required", nil)
	}
	return id, nil
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
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
	httpx.WriteJSON(w, http.StatusOK, u)
}

// UpdateMe changes the phone number or consumer id. A new phone number must
// have been verified on this session first.
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	id, err := currentUserID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var in user.UpdateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}

	st, err := h.loadState(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	current, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if in.Phone != nil && verification.NormalizePhone(*in.Phone) != verification.NormalizePhone(current.Phone) {
		if !st.Verification.IsVerified(*in.Phone) {
			h.fail(w, r, verification.ErrNotVerified)
			return
		}
	}

	u, err := h.Users.UpdateUser(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if st.User != nil && st.User.ID == u.ID {
		st.User = u
		if err := h.saveState(r, st); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}
