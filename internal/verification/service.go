package verification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/sms"
)

type Service interface {
	SendCode(ctx context.Context, phone string) (*Verification, error)
	VerifyCode(ctx context.Context, phone, code string) (string, error)
}

type service struct {
	repo    Repository
	sender  sms.Sender
	metrics *metrics.Registry
	now     func() time.Time
}

func NewService(repo Repository, sender sms.Sender, reg *metrics.Registry) Service {
	return &service{repo: repo, sender: sender, metrics: reg, now: time.Now}
}

// SendCode stores a fresh code valid for CodeTTL and texts it to phone.
// Store and SMS failures both surface as ErrSendFailed.
func (s *service) SendCode(ctx context.Context, phone string) (*Verification, error) {
	if !ValidatePhone(phone) {
		return nil, ErrInvalidPhone
	}

	phone = NormalizePhone(phone)
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SendCode"),
		zap.String("phone", phone),
	)

	code, err := GenerateCode()
	if err != nil {
		log.Error("failed to generate code", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	v, err := s.repo.Create(ctx, &Verification{
		Phone:     phone,
		Code:      code,
		ExpiresAt: s.now().Add(CodeTTL),
	})
	if err != nil {
		log.Error("failed to store verification", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if err := s.sender.Send(ctx, phone, sms.VerificationMessage(code)); err != nil {
		log.Error("failed to send verification sms", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.metrics.Inc(metrics.VerificationIssued)
	log.Info("verification code sent", zap.Time("expires_at", v.ExpiresAt))
	return v, nil
}

// VerifyCode confirms the newest live row for phone and code and returns the phone.
func (s *service) VerifyCode(ctx context.Context, phone, code string) (string, error) {
	phone = NormalizePhone(phone)
	code = strings.TrimSpace(code)
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "VerifyCode"),
		zap.String("phone", phone),
	)

	if code == "" {
		return "", ErrCodeRequired
	}

	v, err := s.repo.FindActive(ctx, phone, code, s.now())
	if err != nil {
		if !errors.Is(err, ErrCodeInvalid) {
			log.Error("failed to look up verification", zap.Error(err))
		}
		return "", err
	}

	if err := s.repo.MarkVerified(ctx, v.ID); err != nil {
		if !errors.Is(err, ErrCodeInvalid) {
			log.Error("failed to mark verification", zap.Error(err))
		}
		return "", err
	}

	s.metrics.Inc(metrics.VerificationVerified)
	log.Info("phone verified", zap.String("verification_id", v.ID))
	return v.Phone, nil
}
