package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper allows us to mock the HTTP response
type MockRoundTripper func(req *http.Request) (*http.Response, error)

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestSender(rt http.RoundTripper) *sensSender {
	s := NewSENSSender(SENSConfig{
		AccessKey:    "access",
		SecretKey:    "secret",
		ServiceID:    "ncp:sms:kr:123:svc",
		SenderNumber: "0212345678",
	}).(*sensSender)
	s.httpClient.Transport = rt
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return s
}

func TestSign(t *testing.T) {
	// HMAC-SHA256 is deterministic; the same inputs always give the same signature.
	a := sign("POST", "/sms/v2/services/x/messages", "1700000000000", "access", "secret")
	b := sign("POST", "/sms/v2/services/x/messages", "1700000000000", "access", "secret")
	c := sign("POST", "/sms/v2/services/x/messages", "1700000000001", "access", "secret")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 44)
}

func TestSENSSender_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		s := newTestSender(MockRoundTripper(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://sens.apigw.ntruss.com/sms/v2/services/ncp:sms:kr:123:svc/messages", req.URL.String())
			assert.Equal(t, "1700000000000", req.Header.Get("x-ncp-apigw-timestamp"))
			assert.Equal(t, "access", req.Header.Get("x-ncp-iam-access-key"))
			assert.Equal(t,
				sign("POST", "/sms/v2/services/ncp:sms:kr:123:svc/messages", "1700000000000", "access", "secret"),
				req.Header.Get("x-ncp-apigw-signature-v2"))

			var body sensRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "SMS", body.Type)
			assert.Equal(t, "COMM", body.ContentType)
			assert.Equal(t, "82", body.CountryCode)
			assert.Equal(t, "0212345678", body.From)
			assert.Equal(t, "hello", body.Content)
			require.Len(t, body.Messages, 1)
			assert.Equal(t, "01012345678", body.Messages[0].To)

			return &http.Response{
				StatusCode: http.StatusAccepted,
				Body:       io.NopCloser(bytes.NewBufferString(`{"statusCode":"202"}`)),
				Header:     make(http.Header),
			}, nil
		}))

		assert.NoError(t, s.Send(ctx, "010-1234-5678", "hello"))
	})

	t.Run("NonSuccessStatus", func(t *testing.T) {
		s := newTestSender(MockRoundTripper(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusUnauthorized,
				Body:       io.NopCloser(bytes.NewBufferString(`{"errorMessage":"bad signature"}`)),
				Header:     make(http.Header),
			}, nil
		}))

		err := s.Send(ctx, "010-1234-5678", "hello")
		assert.ErrorIs(t, err, ErrSendFailed)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("TransportError", func(t *testing.T) {
		s := newTestSender(MockRoundTripper(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset")
		}))

		assert.ErrorIs(t, s.Send(ctx, "010-1234-5678", "hello"), ErrSendFailed)
	})
}
