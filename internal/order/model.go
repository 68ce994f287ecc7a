package order

import (
	"strconv"
	"time"

	"storefront-be/internal/utils"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// CanTransitionTo reports whether next is reachable from s.
// An order is claimed (processing) before the payment provider is called;
// a claim either completes, fails, or is released back to pending.
// completed -> completed is accepted so confirmations stay idempotent.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusFailed
	case StatusProcessing:
		return next == StatusCompleted || next == StatusFailed || next == StatusPending
	case StatusCompleted:
		return next == StatusCompleted
	}
	return false
}

type Order struct {
	ID             string    `json:"id"`
	UserID         *string   `json:"user_id,omitempty"`
	OrderID        string    `json:"order_id"`
	PaymentKey     string    `json:"payment_key"`
	Amount         int64     `json:"amount"`
	Status         Status    `json:"status"`
	CustomerEmail  string    `json:"customer_email"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone"`
	TrackingNumber *string   `json:"tracking_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CanSetTracking reports whether a tracking number may still be attached.
func (o *Order) CanSetTracking() bool {
	return o.Status == StatusCompleted && o.TrackingNumber == nil
}

// GenerateOrderID returns ORDER_<unix millis>_<9 base36 chars>.
func GenerateOrderID(now time.Time) string {
	return "ORDER_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + utils.RandomBase36(9)
}

type PaymentCompleteRequest struct {
	OrderID      string `json:"orderId"`
	Phone        string `json:"phone"`
	Amount       int64  `json:"amount"`
	CustomerName string `json:"customerName"`
}

func (r PaymentCompleteRequest) Validate() error {
	if r.OrderID == "" || r.Phone == "" || r.Amount == 0 {
		return ErrMissingFields
	}
	if r.Amount < 0 {
		return ErrInvalidAmount
	}
	return nil
}

type TrackingRequest struct {
	OrderID        string `json:"orderId"`
	TrackingNumber string `json:"trackingNumber"`
	Phone          string `json:"phone"`
	CustomerName   string `json:"customerName"`
}

func (r TrackingRequest) Validate() error {
	if r.OrderID == "" || r.TrackingNumber == "" || r.Phone == "" {
		return ErrMissingFields
	}
	return nil
}
