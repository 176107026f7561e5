package catalog

import (
	"sort"
	"strings"
)

// Sort keys accepted by Sort. Anything else is a pass-through.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNewest    = "newest"
	SortDefault   = "default"
)

// ByCategory selects products for a category tab. "all" (or an empty id)
// returns the whole catalog, "promo" the promoted subset, anything else an
// exact match on the category key. Unknown ids yield an empty slice.
func ByCategory(categoryID string) []Product {
	if categoryID == "" || categoryID == CategoryAll {
		return append([]Product(nil), Products...)
	}
	if categoryID == CategoryPromo {
		return PromoProducts()
	}
	out := []Product{}
	for _, p := range Products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// Search matches a free-text query against name, type, description, brand,
// barcode and spec strings. Matching is case-insensitive except for the
// barcode, which is compared as-is. A blank query returns no results: search
// is opt-in, not "show all". Result order is catalog order.
func Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Product{}
	}
	out := []Product{}
	for _, p := range Products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Type), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(p.CodeBar, q) ||
		strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, s := range p.Specs {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// Sort returns a new slice ordered by key; the input is never mutated.
// Ties keep their original relative order.
func Sort(products []Product, key string) []Product {
	out := append([]Product(nil), products...)
	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[j].Price.LessThan(out[i].Price) })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	}
	return out
}

// NewProducts returns the new-flagged subset in catalog order.
func NewProducts() []Product {
	out := []Product{}
	for _, p := range Products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out
}

// PromoProducts returns the promoted subset in catalog order.
func PromoProducts() []Product {
	out := []Product{}
	for _, p := range Products {
		if p.IsPromo {
			out = append(out, p)
		}
	}
	return out
}
