// Package render maps catalog and cart records to HTML fragments. Every
// builder is a pure function; callers decide where the markup lands. All
// catalog- and cart-sourced strings pass through Esc before they reach an
// attribute or text position — both stores can carry characters that must
// never be interpreted as markup.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eafshoop/storefront/internal/cart"
	"github.com/eafshoop/storefront/internal/catalog"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// Esc neutralizes quote, less-than and greater-than (and the ampersand they
// ride on) for safe attribute and text insertion.
func Esc(s string) string { return escaper.Replace(s) }

// Stars renders the five-glyph rating row. Position i is filled when
// i ≤ floor(rating); the single position directly above the floor is the
// half star; the rest are empty.
func Stars(rating float64) string {
	var b strings.Builder
	b.WriteString(`<span class="stars">`)
	for i := 1; i <= 5; i++ {
		switch {
		case float64(i) <= math.Floor(rating):
			b.WriteString(`<span class="star filled">★</span>`)
		case float64(i)-rating < 1:
			b.WriteString(`<span class="star half">★</span>`)
		default:
			b.WriteString(`<span class="star">★</span>`)
		}
	}
	b.WriteString(`</span>`)
	return b.String()
}

// StockBadge labels stock levels: out at ≤0, low (with the count) through 5,
// generic in-stock above that.
func StockBadge(stock int) string {
	switch {
	case stock <= 0:
		return `<span class="badge-stock out-of-stock">Rupture</span>`
	case stock <= 5:
		return fmt.Sprintf(`<span class="badge-stock low-stock">Stock limité (%d)</span>`, stock)
	default:
		return `<span class="badge-stock in-stock">En stock</span>`
	}
}

// DiscountPercent is the rounded integer percentage off, computed only for
// promoted products that carry an original price.
func DiscountPercent(original, current decimal.Decimal) int {
	if original.IsZero() {
		return 0
	}
	pct := decimal.NewFromInt(1).Sub(current.Div(original)).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

func priceBlock(p catalog.Product) string {
	if p.IsPromo && p.OriginalPrice != nil {
		pct := DiscountPercent(*p.OriginalPrice, p.Price)
		return fmt.Sprintf(
			`<span class="original-price">%s MAD</span><span class="price">%s MAD</span><span class="discount-pct">-%d%%</span>`,
			p.OriginalPrice.StringFixed(2), p.Price.StringFixed(2), pct)
	}
	return fmt.Sprintf(`<span class="price">%s MAD</span>`, p.Price.StringFixed(2))
}

func specPills(specs []string) string {
	if len(specs) > 3 {
		specs = specs[:3]
	}
	var b strings.Builder
	for _, s := range specs {
		fmt.Fprintf(&b, `<span class="spec-pill">%s</span>`, Esc(s))
	}
	return b.String()
}

// ProductCard renders one catalog card: badges, image with stock badge and
// description overlay, rating, spec pills, price block and the quantity
// stepper. Add-to-cart is disabled at stock zero.
func ProductCard(p catalog.Product) string {
	promoClass := ""
	if p.IsPromo && p.OriginalPrice != nil {
		promoClass = " promotion"
	}

	var badges strings.Builder
	if p.IsNew {
		badges.WriteString(`<span class="badge badge-new">Nouveau</span>`)
	}
	fmt.Fprintf(&badges, `<span class="badge badge-type">%s</span>`, Esc(p.Type))

	addBtn := `<button class="add-to-cart">🛒 Ajouter au panier</button>`
	if p.Stock <= 0 {
		addBtn = `<button class="add-to-cart" disabled>Indisponible</button>`
	}

	return fmt.Sprintf(`
<div class="product-card%s" tabindex="0" data-id="%s" data-codebar="%s">
  <div class="card-badges">%s</div>
  <div class="product-image">
    <img src="%s" alt="%s" loading="lazy">
    %s
    <div class="product-overlay"><p class="product-description">%s</p></div>
  </div>
  <div class="card-body">
    <span class="card-brand">%s</span>
    <h3>%s</h3>
    <div class="card-rating">%s<span class="rating-count">(%d)</span></div>
    <div class="card-specs">%s</div>
    <div class="card-price">%s</div>
  </div>
  <div class="card-footer">
    <div class="quantity-control">
      <button class="quantity-btn minus" aria-label="Diminuer">−</button>
      <input type="number" class="quantity-input" value="1" min="1" max="99" aria-label="Quantité">
      <button class="quantity-btn plus" aria-label="Augmenter">+</button>
    </div>
    %s
  </div>
</div>`,
		promoClass, Esc(p.ID), Esc(p.CodeBar),
		badges.String(),
		Esc(p.Image), Esc(p.Name),
		StockBadge(p.Stock),
		Esc(p.Description),
		Esc(p.Brand),
		Esc(p.Name),
		Stars(p.Rating), p.ReviewCount,
		specPills(p.Specs),
		priceBlock(p),
		addBtn,
	)
}

// ProductGrid joins the cards for a product list, or the empty-state block
// when nothing matched.
func ProductGrid(products []catalog.Product, emptyHint string) string {
	if len(products) == 0 {
		return fmt.Sprintf(`
<div class="empty-state" style="grid-column:1/-1">
  <div class="empty-icon">🔍</div>
  <h3>Aucun produit trouvé</h3>
  <p>%s</p>
</div>`, Esc(emptyHint))
	}
	var b strings.Builder
	for _, p := range products {
		b.WriteString(ProductCard(p))
	}
	return b.String()
}

// CarouselSet renders the cards twice, the clones marked aria-hidden, so the
// auto-scroll can wrap around seamlessly.
func CarouselSet(products []catalog.Product) string {
	var b strings.Builder
	for _, p := range products {
		b.WriteString(ProductCard(p))
	}
	clones := strings.ReplaceAll(b.String(), `class="product-card`, `aria-hidden="true" class="product-card`)
	return b.String() + clones
}

// CartLine renders one drawer line: thumbnail, name, unit price, its own
// stepper (no upper cap here) and a remove action.
func CartLine(it cart.LineItem) string {
	return fmt.Sprintf(`
<div class="cart-item">
  <img src="%s" alt="%s">
  <div class="cart-item-details">
    <h4>%s</h4>
    <div class="cart-item-price">%s MAD</div>
    <div class="cart-item-controls">
      <div class="quantity-control">
        <button class="quantity-btn minus small" data-id="%s">−</button>
        <input type="number" class="quantity-input small" value="%d" readonly>
        <button class="quantity-btn plus small" data-id="%s">+</button>
      </div>
      <button class="remove-item" data-id="%s">Supprimer</button>
    </div>
  </div>
</div>`,
		Esc(it.Image), Esc(it.Name),
		Esc(it.Name),
		it.Price.StringFixed(2),
		Esc(it.ID), it.Quantity, Esc(it.ID), Esc(it.ID),
	)
}

// CartItems renders the drawer body, or the empty-cart message.
func CartItems(items []cart.LineItem) string {
	if len(items) == 0 {
		return `<p class="empty-cart-msg">Votre panier est vide.</p>`
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString(CartLine(it))
	}
	return b.String()
}
