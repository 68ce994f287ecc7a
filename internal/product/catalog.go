package product

import "strings"

// Catalog is the read-only product list loaded at startup.
type Catalog interface {
	All() []Product
	ByCategory(c Category) []Product
	BySlug(slug string) (Product, error)
	Search(query string) []Product
}

type catalog struct {
	products []Product
	bySlug   map[string]int
}

func NewCatalog(products []Product) Catalog {
	c := &catalog{
		products: make([]Product, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.bySlug[p.Slug] = i
	}
	return c
}

func (c *catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *catalog) ByCategory(cat Category) []Product {
	out := make([]Product, 0)
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

func (c *catalog) BySlug(slug string) (Product, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

// Search matches the query against product names and category labels, case-insensitively.
// An empty query matches nothing.
func (c *catalog) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0)
	if q == "" {
		return out
	}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category.Label()), q) {
			out = append(out, p)
		}
	}
	return out
}
