package product

import (
	"strings"

	"github.com/shopspring/decimal"
)

var priceReplacer = strings.NewReplacer("$", "", "₩", "", "원", "", ",", "", " ", "")

// ParsePrice turns a display price such as "$280" or "12,000원" into a decimal amount.
func ParsePrice(display string) (decimal.Decimal, error) {
	cleaned := priceReplacer.Replace(strings.TrimSpace(display))
	if cleaned == "" {
		return decimal.Zero, ErrInvalidPrice
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return d, nil
}
