package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"storefront-be/internal/product"
)

// NewItem is what the product page submits; id and quantity are derived.
type NewItem struct {
	Name  string `json:"name" validate:"required"`
	Price string `json:"price" validate:"required"`
	Size  string `json:"size"`
	Color string `json:"color"`
	Image string `json:"image"`
}

type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// LineTotal is the parsed unit price times quantity.
func (i Item) LineTotal() (decimal.Decimal, error) {
	unit, err := product.ParsePrice(i.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("item %q: %w", i.ID, err)
	}
	return unit.Mul(decimal.NewFromInt(int64(i.Quantity))), nil
}

// ItemID identifies a line by name, size and color.
func ItemID(name, size, color string) string {
	return name + "-" + size + "-" + color
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}
