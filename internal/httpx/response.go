package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"storefront-be/internal/apperr"
	"storefront-be/internal/logger"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Warn("failed to encode response", zap.Error(err))
	}
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	WriteJSON(w, code, map[string]string{"error": message})
}

// WriteError reports err with the status and message its apperr kind maps to.
// Internal and external failures are logged and sent to Sentry.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	msg := apperr.MessageOf(err)

	log := logger.FromCtx(r.Context()).With(
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
	)

	if apperr.IsOperational(err) {
		log.Error("request failed", zap.Error(err))
		capture(r, err)
	} else {
		log.Info("request rejected", zap.String("reason", err.Error()))
	}

	WriteJSONError(w, msg, status)
}

func capture(r *http.Request, err error) {
	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}

// DecodeJSON reads the body into dst and runs struct validation on it.
// Malformed bodies and failed rules come back as validation errors.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return apperr.Validation("request body is required", nil)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			return apperr.Validation(typeErr.Field+" has the wrong type", err)
		case errors.As(err, &syntaxErr):
			return apperr.Validation("malformed JSON body", err)
		default:
			return apperr.Validation("invalid request body", err)
		}
	}
	return Validate(dst)
}
