package sms

import (
	"context"

	"storefront-be/internal/metrics"
)

type countingSender struct {
	next Sender
	reg  *metrics.Registry
}

// WithMetrics counts sent and failed messages in reg.
func WithMetrics(next Sender, reg *metrics.Registry) Sender {
	return &countingSender{next: next, reg: reg}
}

func (s *countingSender) Send(ctx context.Context, phone, message string) error {
	if err := s.next.Send(ctx, phone, message); err != nil {
		s.reg.Inc(metrics.SMSFailed)
		return err
	}
	s.reg.Inc(metrics.SMSSent)
	return nil
}
