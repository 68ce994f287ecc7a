package middleware

import (
	"crypto/subtle"
	"net/http"

	"storefront-be/internal/httpx"
)

const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey guards admin routes with a shared key. An empty key locks them.
func RequireAdminKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given := r.Header.Get(AdminKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
				httpx.WriteJSONError(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
