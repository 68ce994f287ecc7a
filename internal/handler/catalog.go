package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"storefront-be/internal/httpx"
	"storefront-be/internal/product"
)

type categoryView struct {
	Slug  product.Category `json:"slug"`
	Label string           `json:"label"`
}

// ListProducts serves the catalog, filtered by ?category= and searched by ?q=.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	raw := r.URL.Query().Get("category")

	var products []product.Product
	switch {
	case raw != "":
		cat, err := product.ParseCategory(raw)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if q != "" {
			products = inCategory(h.Catalog.Search(q), cat)
		} else {
			products = h.Catalog.ByCategory(cat)
		}
	case q != "":
		products = h.Catalog.Search(q)
	default:
		products = h.Catalog.All()
	}

	if products == nil {
		products = []product.Product{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func inCategory(found []product.Product, cat product.Category) []product.Product {
	out := make([]product.Product, 0, len(found))
	for _, p := range found {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Catalog.BySlug(chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) ListCategories(w http.ResponseWriter, _ *http.Request) {
	out := make([]categoryView, 0, len(product.Categories))
	for _, c := range product.Categories {
		out = append(out, categoryView{Slug: c, Label: c.Label()})
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"categories": out})
}
