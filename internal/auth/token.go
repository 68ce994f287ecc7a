package auth

import (
	"net/http"
	"strings"
)

// AccessTokenCookie is set on login and register and cleared on logout.
const AccessTokenCookie = "access_token"

const bearerScheme = "bearer"

// ExtractAccessToken returns the session token from the access cookie, or
// from an "Authorization: Bearer" header when the cookie is absent or was
// cleared by logout.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}
