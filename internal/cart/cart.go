package cart

import (
	"strings"

	"github.com/shopspring/decimal"

	"storefront-be/internal/product"
)

// Cart holds the line items of one session plus the visibility of the cart panel.
// A present item always has Quantity >= 1.
type Cart struct {
	Items  []Item `json:"items"`
	IsOpen bool   `json:"is_open"`
}

func validateNewItem(n NewItem) error {
	if strings.TrimSpace(n.Name) == "" {
		return ErrInvalidItem
	}
	if _, err := product.ParsePrice(n.Price); err != nil {
		return ErrInvalidItem
	}
	return nil
}

// AddItem increments the matching line or appends a new one with quantity 1,
// then opens the cart panel.
func (c *Cart) AddItem(n NewItem) (Item, error) {
	if err := validateNewItem(n); err != nil {
		return Item{}, err
	}

	id := ItemID(n.Name, n.Size, n.Color)
	c.IsOpen = true

	if i := c.indexOf(id); i >= 0 {
		c.Items[i].Quantity++
		return c.Items[i], nil
	}

	item := Item{
		ID:       id,
		Name:     n.Name,
		Price:    n.Price,
		Size:     n.Size,
		Color:    n.Color,
		Image:    n.Image,
		Quantity: 1,
	}
	c.Items = append(c.Items, item)
	return item, nil
}

// UpdateQuantity sets the quantity of a line; qty <= 0 removes it.
func (c *Cart) UpdateQuantity(id string, qty int) error {
	if qty <= 0 {
		c.RemoveItem(id)
		return nil
	}

	i := c.indexOf(id)
	if i < 0 {
		return ErrCartItemNotFound
	}
	c.Items[i].Quantity = qty
	return nil
}

// RemoveItem drops the line with id; unknown ids are ignored.
func (c *Cart) RemoveItem(id string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

func (c *Cart) Open()  { c.IsOpen = true }
func (c *Cart) Close() { c.IsOpen = false }

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// Totals sums parsed unit price times quantity. Shipping is always free.
func (c *Cart) Totals() (Totals, error) {
	subtotal := decimal.Zero
	for _, it := range c.Items {
		line, err := it.LineTotal()
		if err != nil {
			return Totals{}, err
		}
		subtotal = subtotal.Add(line)
	}

	shipping := decimal.Zero
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}, nil
}

func (c *Cart) indexOf(id string) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
