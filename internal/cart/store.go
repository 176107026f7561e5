// Package cart implements the shopping cart: an ordered list of line items
// persisted as one JSON array in a storage slot. The persisted form is
// editable outside the program, so it is treated as untrusted input and
// re-validated on every read.
package cart

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eafshoop/storefront/internal/catalog"
	"github.com/eafshoop/storefront/internal/storage"
)

// LineItem is a denormalized snapshot of a product at add-time. It references
// the product by id, not by pointer; price is frozen when the item is added.
type LineItem struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Image    string
	CodeBar  string
	Quantity int
}

// MarshalJSON writes the persisted wire shape, price as a bare JSON number.
func (it LineItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineItemJSON{
		ID:       it.ID,
		Name:     it.Name,
		Price:    json.Number(it.Price.String()),
		Image:    it.Image,
		CodeBar:  it.CodeBar,
		Quantity: json.Number(strconv.Itoa(it.Quantity)),
	})
}

// lineItemJSON is the wire shape of a persisted item. Price stays a JSON
// number to keep the slot format compatible with what the storefront has
// always written: {id, name, price, image, codeBar, quantity}.
type lineItemJSON struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Image    string      `json:"image"`
	CodeBar  string      `json:"codeBar"`
	Quantity json.Number `json:"quantity"`
}

// MsgInvalidProduct is surfaced to the user when an add request carries a
// product with no id or no name.
const MsgInvalidProduct = "Produit invalide."

// Store owns one persisted cart slot. All operations are total over their
// visible effects: a corrupt or unreachable slot reads as an empty cart and a
// failed write is logged, never propagated.
type Store struct {
	slot storage.Slot
	key  string
}

func NewStore(slot storage.Slot, key string) *Store {
	return &Store{slot: slot, key: key}
}

// Items reads the persisted cart. Absent, unparsable or non-array slots read
// as empty; structurally invalid entries are dropped, not repaired. Never
// returns an error.
func (s *Store) Items(ctx context.Context) []LineItem {
	raw, status, err := s.slot.Get(ctx, s.key)
	if err != nil {
		log.Printf("[cart] read key=%s status=%s err=%v", s.key, status, err)
	}
	if raw == "" {
		return []LineItem{}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("[cart] corrupt slot key=%s: %v", s.key, err)
		return []LineItem{}
	}

	out := []LineItem{}
	for _, e := range entries {
		item, ok := validateEntry(e)
		if !ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

// validateEntry applies the line item invariants to one persisted entry:
// non-blank string id and name, finite non-negative numeric price, positive
// integer quantity. Entries are judged one by one so a tampered neighbor
// cannot take the whole cart down. Surviving fields are coerced to their
// canonical types.
func validateEntry(raw json.RawMessage) (LineItem, bool) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var e map[string]any
	if err := dec.Decode(&e); err != nil {
		return LineItem{}, false
	}

	id, ok := e["id"].(string)
	if !ok || strings.TrimSpace(id) == "" {
		return LineItem{}, false
	}
	name, ok := e["name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return LineItem{}, false
	}
	priceNum, ok := e["price"].(json.Number)
	if !ok {
		return LineItem{}, false
	}
	price, err := priceNum.Float64()
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return LineItem{}, false
	}
	qtyNum, ok := e["quantity"].(json.Number)
	if !ok {
		return LineItem{}, false
	}
	qty, err := qtyNum.Int64()
	if err != nil || qty <= 0 {
		return LineItem{}, false
	}

	return LineItem{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromFloat(price),
		Image:    asString(e["image"]),
		CodeBar:  asString(e["codeBar"]),
		Quantity: int(qty),
	}, true
}

// asString coerces the optional display fields the way the persisted format
// has always been read: strings pass through, numbers stringify, anything
// else becomes empty.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func (s *Store) save(ctx context.Context, items []LineItem) {
	b, err := json.Marshal(items)
	if err != nil {
		log.Printf("[cart] marshal key=%s: %v", s.key, err)
		return
	}
	// A failed write leaves the prior persisted state intact; the in-memory
	// view may disagree with storage until the next read. Accepted window.
	if err := s.slot.Set(ctx, s.key, string(b)); err != nil {
		log.Printf("[cart] save key=%s: %v", s.key, err)
	}
}

// Add puts qty units of p into the cart. Quantity is clamped to at least 1;
// an existing line for the same product is incremented in place, otherwise a
// new line is appended. An invalid product returns MsgInvalidProduct and
// mutates nothing.
func (s *Store) Add(ctx context.Context, p catalog.Product, qty int) (msg string) {
	if qty < 1 {
		qty = 1
	}
	if strings.TrimSpace(p.ID) == "" || strings.TrimSpace(p.Name) == "" {
		return MsgInvalidProduct
	}

	items := s.Items(ctx)
	found := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		items = append(items, LineItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			CodeBar:  p.CodeBar,
			Quantity: qty,
		})
	}
	s.save(ctx, items)
	return ""
}

// Remove drops the line for id. Missing ids are a no-op, not an error.
func (s *Store) Remove(ctx context.Context, id string) {
	items := s.Items(ctx)
	out := items[:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	s.save(ctx, out)
}

// SetQuantity sets the quantity for id. A target of zero or below removes the
// line. No upper bound is enforced here; the input widgets cap at 99.
func (s *Store) SetQuantity(ctx context.Context, id string, qty int) {
	if qty <= 0 {
		s.Remove(ctx, id)
		return
	}
	items := s.Items(ctx)
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = qty
			s.save(ctx, items)
			return
		}
	}
}

// Clear deletes the slot entirely.
func (s *Store) Clear(ctx context.Context) {
	if err := s.slot.Delete(ctx, s.key); err != nil {
		log.Printf("[cart] clear key=%s: %v", s.key, err)
	}
}

// Total is the sum of price × quantity over the cart, formatted with exactly
// two decimals.
func (s *Store) Total(ctx context.Context) string {
	return TotalOf(s.Items(ctx))
}

// TotalOf computes the formatted total of an already-read item list.
func TotalOf(items []LineItem) string {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum.StringFixed(2)
}

// Count is the total number of units across all lines; drives the badge,
// which hides itself at zero.
func (s *Store) Count(ctx context.Context) int {
	return CountOf(s.Items(ctx))
}

// CountOf sums the quantities of an already-read item list.
func CountOf(items []LineItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Subtotal is price × quantity for one line, formatted with two decimals.
func (it LineItem) Subtotal() string {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))).StringFixed(2)
}
