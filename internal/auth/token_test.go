package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccessToken(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
		header string
		want   string
	}{
		{
			name:   "LoginCookieWinsOverHeader",
			cookie: &http.Cookie{Name: AccessTokenCookie, Value: "from-login"},
			header: "Bearer from-api-client",
			want:   "from-login",
		},
		{
			name:   "ApiClientBearer",
			header: "Bearer from-api-client",
			want:   "from-api-client",
		},
		{
			name:   "LowercaseScheme",
			header: "bearer from-api-client",
			want:   "from-api-client",
		},
		{
			name:   "LoggedOutCookieUsesHeader",
			cookie: &http.Cookie{Name: AccessTokenCookie, Value: ""},
			header: "Bearer from-api-client",
			want:   "from-api-client",
		},
		{
			name:   "LoggedOutWithoutHeader",
			cookie: &http.Cookie{Name: AccessTokenCookie, Value: ""},
		},
		{
			name:   "OtherCookieIgnored",
			cookie: &http.Cookie{Name: "sessionId", Value: "sess-1"},
		},
		{
			name:   "BasicAuthIgnored",
			header: "Basic YWRtaW46c2VjcmV0",
		},
		{
			name:   "SchemeWithoutToken",
			header: "Bearer",
		},
		{
			name: "Anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.want, ExtractAccessToken(req))
		})
	}
}
