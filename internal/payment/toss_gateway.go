package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"storefront-be/internal/logger"
)

const tossBaseURL = "https://api.tosspayments.com"

type tossGateway struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

func NewTossGateway(secretKey string) Gateway {
	if secretKey == "" {
		logger.L().Warn("Toss secret key is empty")
	}

	return &tossGateway{
		secretKey: secretKey,
		baseURL:   tossBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ----------------- Confirm -----------------

func (t *tossGateway) Confirm(ctx context.Context, in ConfirmRequest) (*Confirmation, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "gateway"),
		zap.String("order_id", in.OrderID),
		zap.Int64("amount", in.Amount),
	)

	if t.secretKey == "" {
		return nil, ErrMissingSecret
	}

	jsonBody, err := json.Marshal(in)
	if err != nil {
		log.Error("Failed to marshal confirm request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/v1/payments/confirm", bytes.NewReader(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	// Toss expects base64("<secret>:") as Basic credentials
	req.SetBasicAuth(t.secretKey, "")
	req.Header.Set("Content-Type", "application/json")

	log.Info("Sending confirm request to Toss")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		log.Error("Toss request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read toss response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		perr := &ProviderError{Status: resp.StatusCode}
		if jsonErr := json.Unmarshal(bodyBytes, perr); jsonErr != nil || perr.Message == "" {
			perr.Message = string(bodyBytes)
		}
		perr.Status = resp.StatusCode

		log.Error("Toss returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("code", perr.Code),
			zap.ByteString("response", bodyBytes),
		)
		return nil, perr
	}

	var res Confirmation
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Toss response", zap.Error(err))
		return nil, err
	}
	res.Raw = json.RawMessage(bodyBytes)

	log.Info("Toss payment confirmed",
		zap.String("payment_key", res.PaymentKey),
		zap.String("status", res.Status),
		zap.String("method", res.Method),
	)

	return &res, nil
}
