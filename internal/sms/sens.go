package sms

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"storefront-be/internal/logger"
	"storefront-be/internal/utils"
)

const sensBaseURL = "https://sens.apigw.ntruss.com"

type SENSConfig struct {
	AccessKey    string
	SecretKey    string
	ServiceID    string
	SenderNumber string
}

type sensSender struct {
	cfg        SENSConfig
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewSENSSender sends through the Naver Cloud SENS v2 API.
func NewSENSSender(cfg SENSConfig) Sender {
	return &sensSender{
		cfg:     cfg,
		baseURL: sensBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

type sensMessage struct {
	To string `json:"to"`
}

type sensRequest struct {
	Type        string        `json:"type"`
	ContentType string        `json:"contentType"`
	CountryCode string        `json:"countryCode"`
	From        string        `json:"from"`
	Content     string        `json:"content"`
	Messages    []sensMessage `json:"messages"`
}

// sign is base64(HMAC-SHA256(secret, "POST {path}\n{timestamp}\n{accessKey}")).
func sign(method, path, timestamp, accessKey, secretKey string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(method + " " + path + "\n" + timestamp + "\n" + accessKey))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (s *sensSender) Send(ctx context.Context, phone, message string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "gateway"),
		zap.String("method", "SENS.Send"),
		zap.String("phone", phone),
	)

	path := fmt.Sprintf("/sms/v2/services/%s/messages", s.cfg.ServiceID)
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)

	body, err := json.Marshal(sensRequest{
		Type:        "SMS",
		ContentType: "COMM",
		CountryCode: "82",
		From:        s.cfg.SenderNumber,
		Content:     message,
		Messages:    []sensMessage{{To: utils.DigitsOnly(phone)}},
	})
	if err != nil {
		log.Error("failed to marshal sms request", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-ncp-apigw-timestamp", timestamp)
	req.Header.Set("x-ncp-iam-access-key", s.cfg.AccessKey)
	req.Header.Set("x-ncp-apigw-signature-v2", sign(http.MethodPost, path, timestamp, s.cfg.AccessKey, s.cfg.SecretKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error("SENS request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Error("SENS returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return fmt.Errorf("%w: status %d", ErrSendFailed, resp.StatusCode)
	}

	log.Info("sms sent")
	return nil
}
