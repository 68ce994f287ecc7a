package order

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"storefront-be/internal/logger"
	"storefront-be/internal/sms"
)

type Service interface {
	CreatePending(ctx context.Context, o *Order) (*Order, error)
	GetByOrderID(ctx context.Context, orderID string) (*Order, error)
	Claim(ctx context.Context, orderID, paymentKey string) error
	Release(ctx context.Context, orderID string) error
	Complete(ctx context.Context, orderID, paymentKey string) error
	Fail(ctx context.Context, orderID string) error
	ListAll(ctx context.Context) ([]Order, error)
	ListForCustomer(ctx context.Context, email string) ([]Order, error)

	SendVerificationSMS(ctx context.Context, phone, code string) error
	SendPaymentCompleteSMS(ctx context.Context, req PaymentCompleteRequest) error
	SendTrackingSMS(ctx context.Context, req TrackingRequest) error
}

type service struct {
	repo   Repository
	sender sms.Sender
}

func NewService(repo Repository, sender sms.Sender) Service {
	return &service{repo: repo, sender: sender}
}

func (s *service) CreatePending(ctx context.Context, o *Order) (*Order, error) {
	if o.OrderID == "" || o.CustomerEmail == "" {
		return nil, ErrMissingFields
	}
	if o.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	o.Status = StatusPending
	return s.repo.Create(ctx, o)
}

func (s *service) GetByOrderID(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.GetByOrderID(ctx, orderID)
}

func (s *service) Claim(ctx context.Context, orderID, paymentKey string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Claim"),
		zap.String("order_id", orderID),
	)

	if orderID == "" || paymentKey == "" {
		return ErrMissingFields
	}
	if err := s.repo.Claim(ctx, orderID, paymentKey); err != nil {
		log.Info("order could not be claimed", zap.Error(err))
		return err
	}
	return nil
}

// Release returns a claimed order to pending so the payment can be retried.
func (s *service) Release(ctx context.Context, orderID string) error {
	if err := s.repo.Release(ctx, orderID); err != nil {
		logger.FromCtx(ctx).Warn("failed to release order claim",
			zap.String("order_id", orderID), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Complete(ctx context.Context, orderID, paymentKey string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Complete"),
		zap.String("order_id", orderID),
	)

	if err := s.repo.MarkCompleted(ctx, orderID, paymentKey); err != nil {
		log.Error("failed to complete order", zap.Error(err))
		return err
	}

	log.Info("order completed")
	return nil
}

func (s *service) Fail(ctx context.Context, orderID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Fail"),
		zap.String("order_id", orderID),
	)

	if err := s.repo.MarkFailed(ctx, orderID); err != nil {
		log.Warn("failed to mark order failed", zap.Error(err))
		return err
	}

	log.Info("order marked failed")
	return nil
}

func (s *service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListForCustomer(ctx context.Context, email string) ([]Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrMissingFields
	}
	return s.repo.ListByCustomerEmail(ctx, email)
}

func (s *service) SendVerificationSMS(ctx context.Context, phone, code string) error {
	if phone == "" || code == "" {
		return ErrMissingFields
	}

	if err := s.sender.Send(ctx, phone, sms.VerificationMessage(code)); err != nil {
		logger.FromCtx(ctx).Error("verification sms failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSMSFailed, err)
	}
	return nil
}

// SendPaymentCompleteSMS texts the receipt, then marks the order completed.
// Only orders that reached the payment provider (processing or completed)
// qualify, and the amount must match the stored one. A failed status update
// after a delivered message is logged only.
func (s *service) SendPaymentCompleteSMS(ctx context.Context, req PaymentCompleteRequest) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SendPaymentCompleteSMS"),
		zap.String("order_id", req.OrderID),
	)

	if err := req.Validate(); err != nil {
		return err
	}

	o, err := s.repo.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		return err
	}
	if o.Status != StatusProcessing && o.Status != StatusCompleted {
		return ErrInvalidTransition
	}
	if req.Amount != o.Amount {
		log.Warn("payment complete amount mismatch", zap.Int64("expected", o.Amount), zap.Int64("got", req.Amount))
		return ErrAmountMismatch
	}

	if err := s.sender.Send(ctx, req.Phone, sms.PaymentCompleteMessage(req.OrderID, req.Amount, req.CustomerName)); err != nil {
		log.Error("payment complete sms failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSMSFailed, err)
	}

	if err := s.repo.MarkCompleted(ctx, req.OrderID, ""); err != nil {
		log.Error("failed to update order status after sms", zap.Error(err))
	}

	log.Info("payment complete sms sent")
	return nil
}

// SendTrackingSMS texts the tracking number, then stores it on the order.
// A failed store update returns ErrTrackingSaveFailed; the message is not recalled.
func (s *service) SendTrackingSMS(ctx context.Context, req TrackingRequest) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SendTrackingSMS"),
		zap.String("order_id", req.OrderID),
	)

	if err := req.Validate(); err != nil {
		return err
	}

	o, err := s.repo.GetByOrderID(ctx, req.OrderID)
	if err != nil {
		return err
	}
	if !o.CanSetTracking() {
		return ErrTrackingNotAllowed
	}

	if err := s.sender.Send(ctx, req.Phone, sms.TrackingMessage(req.OrderID, req.TrackingNumber, req.CustomerName)); err != nil {
		log.Error("tracking sms failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSMSFailed, err)
	}

	if err := s.repo.SetTrackingNumber(ctx, req.OrderID, req.TrackingNumber); err != nil {
		log.Error("failed to store tracking number after sms", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrTrackingSaveFailed, err)
	}

	log.Info("tracking sms sent", zap.String("tracking_number", req.TrackingNumber))
	return nil
}
