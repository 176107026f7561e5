// Package catalog holds the product fixtures and the read-only query helpers
// over them. The catalog is authored content: it is trusted, immutable at
// runtime and kept in insertion order.
package catalog

import "github.com/shopspring/decimal"

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	// OriginalPrice is only set while a promotion runs (NUMERIC-style exact value).
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Stock         int              `json:"stock"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"reviewCount"`
	IsNew         bool             `json:"isNew"`
	IsPromo       bool             `json:"isPromo"`
	CodeBar       string           `json:"codeBar"`
	Image         string           `json:"image"`
	Specs         []string         `json:"specs"`
	Description   string           `json:"description"`
	Type          string           `json:"type"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Reserved virtual category ids. "all" selects the whole catalog, "promo"
// selects the promoted subset; neither matches a Product.Category value.
const (
	CategoryAll   = "all"
	CategoryPromo = "promo"
)

// CategoryByID returns the category record for id, or false when unknown.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
