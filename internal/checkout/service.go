package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/order"
	"storefront-be/internal/payment"
	"storefront-be/internal/session"
	"storefront-be/internal/sms"
)

const orderNamePrefix = "CODEMORPH 상품"

type Service interface {
	Prepare(ctx context.Context, st *session.State, customer Customer) (*Checkout, error)
	Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (*Result, error)
	Fail(ctx context.Context, orderID, code, message string) error
}

type Options struct {
	ClientKey     string
	PublicBaseURL string
}

type service struct {
	orders  order.Service
	gateway payment.Gateway
	sender  sms.Sender
	metrics *metrics.Registry
	opts    Options
	now     func() time.Time
}

func NewService(orders order.Service, gateway payment.Gateway, sender sms.Sender, reg *metrics.Registry, opts Options) Service {
	opts.PublicBaseURL = strings.TrimRight(opts.PublicBaseURL, "/")
	return &service{
		orders:  orders,
		gateway: gateway,
		sender:  sender,
		metrics: reg,
		opts:    opts,
		now:     time.Now,
	}
}

func OrderName(totalItems int) string {
	return fmt.Sprintf("%s %d건", orderNamePrefix, totalItems)
}

// Prepare turns the session cart into a pending order and the parameters the
// payment widget is opened with.
func (s *service) Prepare(ctx context.Context, st *session.State, customer Customer) (*Checkout, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Prepare"),
	)

	if st.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var userID *string
	if u := st.User; u != nil {
		userID = &u.ID
		if customer.Email == "" {
			customer.Email = u.Email
		}
		if customer.Name == "" {
			customer.Name = u.FullName()
		}
		if customer.Phone == "" {
			customer.Phone = u.Phone
		}
	}
	if !customer.complete() {
		return nil, ErrMissingCustomer
	}

	verified := st.Verification.IsVerified(customer.Phone) ||
		(st.User != nil && st.User.PhoneVerified && samePhone(st.User.Phone, customer.Phone))
	if !verified {
		return nil, ErrPhoneNotVerified
	}

	totals, err := st.Cart.Totals()
	if err != nil {
		log.Error("failed to compute totals", zap.Error(err))
		return nil, err
	}
	totalItems := st.Cart.TotalItems()

	o, err := s.orders.CreatePending(ctx, &order.Order{
		UserID:        userID,
		OrderID:       order.GenerateOrderID(s.now()),
		Amount:        totals.Total.Round(0).IntPart(),
		CustomerEmail: strings.ToLower(strings.TrimSpace(customer.Email)),
		CustomerName:  strings.TrimSpace(customer.Name),
		CustomerPhone: customer.Phone,
	})
	if err != nil {
		log.Error("failed to create pending order", zap.Error(err))
		return nil, err
	}

	log.Info("checkout prepared", zap.String("order_id", o.OrderID), zap.Int64("amount", o.Amount))

	return &Checkout{
		Order:      o,
		Totals:     totals,
		TotalItems: totalItems,
		Widget: payment.WidgetParams{
			ClientKey:     s.opts.ClientKey,
			Amount:        o.Amount,
			Currency:      payment.CurrencyKRW,
			OrderID:       o.OrderID,
			OrderName:     OrderName(totalItems),
			CustomerEmail: o.CustomerEmail,
			CustomerName:  o.CustomerName,
			CustomerPhone: o.CustomerPhone,
			SuccessURL:    s.opts.PublicBaseURL + "/success",
			FailURL:       s.opts.PublicBaseURL + "/fail",
		},
	}, nil
}

// Confirm claims the order, asks the provider to capture the payment and
// completes the order. Only the caller holding the claim talks to the
// provider; concurrent confirms get ErrConfirmInProgress. The receipt SMS is
// best effort.
func (s *service) Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (*Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Confirm"),
		zap.String("order_id", orderID),
	)

	req := payment.ConfirmRequest{PaymentKey: paymentKey, OrderID: orderID, Amount: amount}
	if !req.Valid() {
		return nil, ErrInvalidConfirm
	}

	o, err := s.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch o.Status {
	case order.StatusCompleted:
		if o.PaymentKey == paymentKey && o.Amount == amount {
			log.Info("order already confirmed")
			return &Result{Order: o, AlreadyConfirmed: true}, nil
		}
		return nil, order.ErrInvalidTransition
	case order.StatusFailed:
		return nil, order.ErrInvalidTransition
	case order.StatusProcessing:
		return nil, ErrConfirmInProgress
	}

	// a mismatched amount leaves the order pending
	if o.Amount != amount {
		log.Warn("amount mismatch", zap.Int64("expected", o.Amount), zap.Int64("got", amount))
		return nil, ErrAmountMismatch
	}

	if err := s.orders.Claim(ctx, orderID, paymentKey); err != nil {
		if errors.Is(err, order.ErrInvalidTransition) {
			log.Info("order claimed by another confirm")
			return nil, ErrConfirmInProgress
		}
		return nil, err
	}

	conf, err := s.gateway.Confirm(ctx, req)
	if err != nil {
		log.Error("provider confirm failed", zap.Error(err))
		code, fromProvider := payment.ProviderCode(err)
		switch {
		case code == payment.CodeAlreadyProcessed:
			log.Info("provider reports payment already captured")
		case code == payment.CodeAlreadyProcessing:
			s.release(ctx, orderID)
			return nil, fmt.Errorf("%w: %v", ErrConfirmInProgress, err)
		case fromProvider:
			s.markFailed(ctx, orderID)
			return nil, fmt.Errorf("%w: %w", ErrConfirmFailed, err)
		default:
			s.metrics.Inc(metrics.PaymentsFailed)
			s.release(ctx, orderID)
			return nil, fmt.Errorf("%w: %w", ErrConfirmFailed, err)
		}
	}

	// on failure the order stays processing for manual settlement
	if err := s.orders.Complete(ctx, orderID, paymentKey); err != nil {
		log.Error("payment confirmed but order update failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentNotRecorded, err)
	}
	s.metrics.Inc(metrics.PaymentsConfirmed)

	o.Status = order.StatusCompleted
	o.PaymentKey = paymentKey

	res := &Result{Order: o, Confirmation: conf}
	if o.CustomerPhone != "" {
		msg := sms.PaymentCompleteMessage(o.OrderID, o.Amount, o.CustomerName)
		if err := s.sender.Send(ctx, o.CustomerPhone, msg); err != nil {
			log.Warn("payment complete sms failed", zap.Error(err))
		} else {
			res.SMSSent = true
		}
	}

	log.Info("payment confirmed", zap.Int64("amount", amount))
	return res, nil
}

// Fail records a payment the provider or customer aborted. Unknown, claimed
// or already settled orders are left as they are.
func (s *service) Fail(ctx context.Context, orderID, code, message string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Fail"),
		zap.String("order_id", orderID),
		zap.String("code", code),
	)
	log.Info("payment failed", zap.String("message", message))

	if orderID == "" {
		return nil
	}

	o, err := s.orders.GetByOrderID(ctx, orderID)
	if errors.Is(err, order.ErrOrderNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if o.Status == order.StatusProcessing {
		log.Info("confirm in progress, failure redirect ignored")
		return nil
	}

	err = s.orders.Fail(ctx, orderID)
	switch {
	case err == nil:
		s.metrics.Inc(metrics.PaymentsFailed)
		return nil
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrOrderNotFound):
		return nil
	default:
		return err
	}
}

func (s *service) release(ctx context.Context, orderID string) {
	if err := s.orders.Release(ctx, orderID); err != nil {
		logger.FromCtx(ctx).Warn("failed to release order", zap.String("order_id", orderID), zap.Error(err))
	}
}

func (s *service) markFailed(ctx context.Context, orderID string) {
	s.metrics.Inc(metrics.PaymentsFailed)
	if err := s.orders.Fail(ctx, orderID); err != nil {
		logger.FromCtx(ctx).Warn("failed to mark order failed", zap.String("order_id", orderID), zap.Error(err))
	}
}
