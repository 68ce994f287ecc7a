package product

import "fmt"

type Category string

const (
	CategoryMens        Category = "mens"
	CategoryWomens      Category = "womens"
	CategoryFootwear    Category = "footwear"
	CategoryAccessories Category = "accessories"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryMens, CategoryWomens, CategoryFootwear, CategoryAccessories}

var categoryLabels = map[Category]string{
	CategoryMens:        "MENS",
	CategoryWomens:      "WOMENS",
	CategoryFootwear:    "FOOTWEAR",
	CategoryAccessories: "ACCESSORIES",
}

func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

type Product struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Category Category `json:"category"`
	Image    string   `json:"image"`
}
