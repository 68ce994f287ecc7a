package payment

import (
	"encoding/json"
	"time"
)

const CurrencyKRW = "KRW"

type ConfirmRequest struct {
	PaymentKey string `json:"paymentKey"`
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
}

func (r ConfirmRequest) Valid() bool {
	return r.PaymentKey != "" && r.OrderID != "" && r.Amount > 0
}

// Confirmation is the subset of the provider's Payment object the storefront keeps.
type Confirmation struct {
	PaymentKey  string          `json:"paymentKey"`
	OrderID     string          `json:"orderId"`
	OrderName   string          `json:"orderName"`
	Status      string          `json:"status"`
	Method      string          `json:"method"`
	TotalAmount int64           `json:"totalAmount"`
	ApprovedAt  *time.Time      `json:"approvedAt,omitempty"`
	Raw         json.RawMessage `json:"-"`
}

// WidgetParams is what the client-side payment widget needs to render and request payment.
type WidgetParams struct {
	ClientKey     string `json:"clientKey,omitempty"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	OrderID       string `json:"orderId"`
	OrderName     string `json:"orderName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerMobilePhone"`
	SuccessURL    string `json:"successUrl"`
	FailURL       string `json:"failUrl"`
}
