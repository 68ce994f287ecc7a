package checkout

import (
	"strings"

	"storefront-be/internal/cart"
	"storefront-be/internal/order"
	"storefront-be/internal/payment"
	"storefront-be/internal/verification"
)

// Customer is the orderer form on the checkout page. Empty fields fall back
// to the signed-in user's profile.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,krmobile"`
}

func (c Customer) complete() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Email) != "" && strings.TrimSpace(c.Phone) != ""
}

type Checkout struct {
	Order      *order.Order         `json:"order"`
	Totals     cart.Totals          `json:"totals"`
	TotalItems int                  `json:"totalItems"`
	Widget     payment.WidgetParams `json:"widget"`
}

type Result struct {
	Order        *order.Order          `json:"order"`
	Confirmation *payment.Confirmation `json:"confirmation,omitempty"`
	// AlreadyConfirmed is set when the order was completed by an earlier call.
	AlreadyConfirmed bool `json:"alreadyConfirmed"`
	SMSSent          bool `json:"smsSent"`
}

func samePhone(a, b string) bool {
	return a != "" && verification.NormalizePhone(a) == verification.NormalizePhone(b)
}
