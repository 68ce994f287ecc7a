package sms

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront-be/internal/config"
	"storefront-be/internal/logger"
)

var ErrSendFailed = errors.New("sms send failed")

// Sender delivers a single text message to a phone number.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// NewSender returns the SENS sender when every credential is configured,
// otherwise a sender that only logs.
func NewSender(cfg *config.Config) Sender {
	if !cfg.SMSConfigured() {
		logger.L().Warn("SENS credentials missing, SMS will be logged only")
		return NewLogSender()
	}
	return NewSENSSender(SENSConfig{
		AccessKey:    cfg.SMSAccessKey,
		SecretKey:    cfg.SMSSecretKey,
		ServiceID:    cfg.SMSServiceID,
		SenderNumber: cfg.SMSSenderNumber,
	})
}

type logSender struct{}

func NewLogSender() Sender {
	return logSender{}
}

func (logSender) Send(ctx context.Context, phone, message string) error {
	logger.FromCtx(ctx).Info("[dev] sms send",
		zap.String("phone", phone),
		zap.String("message", message),
	)
	return nil
}
