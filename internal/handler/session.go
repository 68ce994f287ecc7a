package handler

import (
	"context"
	"net/http"

	"storefront-be/internal/apperr"
	"storefront-be/internal/logger"
	"storefront-be/internal/session"
)

type sessionKey struct{}

// SessionMiddleware resolves the visitor's session id from the X-Session-ID
// header or the session cookie, issuing a new one when neither is valid.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(session.HeaderName)
		if id == "" {
			if c, err := r.Cookie(session.CookieName); err == nil {
				id = c.Value
			}
		}
		if !session.ValidID(id) {
			id = session.NewID()
		}

		w.Header().Set(session.HeaderName, id)
		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(h.SessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   h.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		ctx := logger.WithSessionID(r.Context(), id)
		ctx = context.WithValue(ctx, sessionKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(sessionKey{}).(string)
	return id
}

func (h *Handler) loadState(r *http.Request) (*session.State, error) {
	st, err := h.Sessions.Load(r.Context(), sessionID(r))
	if err != nil {
		return nil, apperr.External("session store unavailable", err)
	}
	return st, nil
}

func (h *Handler) saveState(r *http.Request, st *session.State) error {
	if err := h.Sessions.Save(r.Context(), st); err != nil {
		return apperr.External("session store unavailable", err)
	}
	return nil
}
