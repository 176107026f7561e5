package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/eafshoop/storefront/internal/cart"
	"github.com/eafshoop/storefront/internal/storage"
)

const testContact = "212600000000"

func newTestRouter() (*gin.Engine, *storage.Memory) {
	gin.SetMode(gin.TestMode)
	slots := storage.NewMemory()
	return New(slots, testContact).Router(), slots
}

// do issues a request pinned to one session so all cart calls share a slot.
func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "eaf_session", Value: "test-session"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) CartResponse {
	t.Helper()
	var got CartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v body=%s", err, w.Body.String())
	}
	return got
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter()
	w := do(r, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestCartFlow(t *testing.T) {
	r, _ := newTestRouter()

	// empty cart
	w := do(r, http.MethodGet, "/api/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	got := decodeCart(t, w)
	if got.Count != 0 || got.Total != "0.00" {
		t.Fatalf("empty cart: count=%d total=%s", got.Count, got.Total)
	}
	if !strings.Contains(got.HTML, "Votre panier est vide.") {
		t.Fatalf("expected empty-cart message, got %s", got.HTML)
	}

	// add product A qty 2
	w = do(r, http.MethodPost, "/api/cart/items", AddItemRequest{ID: "wireless-buds", Quantity: 2})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	got = decodeCart(t, w)
	if got.Count != 2 || got.Total != "499.98" {
		t.Fatalf("after add: count=%d total=%s", got.Count, got.Total)
	}
	if !strings.Contains(got.Message, "ajouté au panier") {
		t.Fatalf("expected confirmation message, got %q", got.Message)
	}

	// add product B qty 1, then remove A
	w = do(r, http.MethodPost, "/api/cart/items", AddItemRequest{ID: "serum-glow", Quantity: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	w = do(r, http.MethodDelete, "/api/cart/items/wireless-buds", nil)
	got = decodeCart(t, w)
	if got.Count != 1 || got.Total != "189.00" || len(got.Items) != 1 {
		t.Fatalf("after remove: count=%d total=%s items=%d", got.Count, got.Total, len(got.Items))
	}

	// set quantity to 0 removes the line
	w = do(r, http.MethodPatch, "/api/cart/items/serum-glow", SetQuantityRequest{Quantity: 0})
	got = decodeCart(t, w)
	if got.Count != 0 {
		t.Fatalf("set-to-zero should remove: count=%d", got.Count)
	}
}

func TestAddCartItemValidation(t *testing.T) {
	r, _ := newTestRouter()

	// unknown product
	w := do(r, http.MethodPost, "/api/cart/items", AddItemRequest{ID: "nope", Quantity: 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	// quantity is clamped into 1..99 at this layer
	w = do(r, http.MethodPost, "/api/cart/items", AddItemRequest{ID: "wireless-buds", Quantity: 500})
	got := decodeCart(t, w)
	if got.Count != 99 {
		t.Fatalf("expected clamp to 99, got %d", got.Count)
	}

	w = do(r, http.MethodPost, "/api/cart/items", AddItemRequest{ID: "serum-glow", Quantity: -3})
	got = decodeCart(t, w)
	has := false
	for _, it := range got.Items {
		if it.ID == "serum-glow" && it.Quantity == 1 {
			has = true
		}
	}
	if !has {
		t.Fatalf("expected qty clamp to 1, items=%+v", got.Items)
	}
}

func TestClearCart(t *testing.T) {
	r, slots := newTestRouter()

	do(r, http.MethodPost, "/api/cart/items", AddItemRequest{ID: "wireless-buds", Quantity: 1})
	w := do(r, http.MethodDelete, "/api/cart", nil)
	got := decodeCart(t, w)
	if got.Count != 0 {
		t.Fatalf("clear: count=%d", got.Count)
	}
	_, status, _ := slots.Get(context.Background(), "cart:test-session")
	if status != storage.StatusAbsent {
		t.Fatalf("clear must delete the slot, status=%s", status)
	}
}

func TestCheckout(t *testing.T) {
	r, _ := newTestRouter()

	// empty cart blocks checkout
	w := do(r, http.MethodPost, "/api/checkout", CheckoutRequest{Name: "Amine", Address: "1 rue du Soleil", Phone: "0612345678"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on empty cart, got %d", w.Code)
	}
	var e HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &e)
	if e.Error != cart.MsgEmptyCart {
		t.Fatalf("error=%q", e.Error)
	}

	do(r, http.MethodPost, "/api/cart/items", AddItemRequest{ID: "wireless-buds", Quantity: 2})

	// invalid phone fails with the localized message
	w = do(r, http.MethodPost, "/api/checkout", CheckoutRequest{Name: "Amine", Address: "1 rue du Soleil", Phone: "0812345678"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on bad phone, got %d", w.Code)
	}

	// valid form answers with the outbound link
	w = do(r, http.MethodPost, "/api/checkout", CheckoutRequest{Name: "Amine", Address: "1 rue du Soleil", Phone: "0612345678"})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var res CheckoutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	u, err := url.Parse(res.URL)
	if err != nil {
		t.Fatalf("bad url: %v", err)
	}
	if u.Host != "wa.me" || u.Path != "/"+testContact {
		t.Fatalf("unexpected link target: %s", res.URL)
	}
	text := u.Query().Get("text")
	if !strings.Contains(text, "Écouteurs Sans Fil Pro") || !strings.Contains(text, "499.98 MAD") {
		t.Fatalf("order message incomplete: %q", text)
	}
}

func TestListProducts(t *testing.T) {
	r, _ := newTestRouter()

	w := do(r, http.MethodGet, "/api/products?cat=automobile&sort=price-asc", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var got ProductListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Count != 2 || got.Title != "Automobile" {
		t.Fatalf("count=%d title=%s", got.Count, got.Title)
	}
	// ascending price: Castrol (549.99) before Dashcam (649.00)
	if !(strings.Index(got.HTML, "castrol-edge-5w30-ll") < strings.Index(got.HTML, "dashcam-4k")) {
		t.Fatalf("sort order wrong")
	}

	// unknown category renders the empty state, not an error
	w = do(r, http.MethodGet, "/api/products?cat=nope", nil)
	got = ProductListResponse{}
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if w.Code != http.StatusOK || got.Count != 0 {
		t.Fatalf("status=%d count=%d", w.Code, got.Count)
	}
	if !strings.Contains(got.HTML, "Aucun produit trouvé") {
		t.Fatalf("expected empty state")
	}
}

func TestSearchTermSlot(t *testing.T) {
	r, slots := newTestRouter()

	w := do(r, http.MethodPost, "/api/search", SearchRequest{Query: "  CASTROL  "})
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	stored, _, _ := slots.Get(context.Background(), "search:test-session")
	if stored != "castrol" {
		t.Fatalf("stored term=%q, want lowercased trimmed", stored)
	}

	// blank term is a guided refusal
	w = do(r, http.MethodPost, "/api/search", SearchRequest{Query: "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	// the search page reads the stored term
	w = do(r, http.MethodGet, "/search", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "castrol") || !strings.Contains(w.Body.String(), "1 résultat") {
		t.Fatalf("search page missing results")
	}
}

func TestPagesRender(t *testing.T) {
	r, _ := newTestRouter()

	w := do(r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("home status=%d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Tous les produits", "cat-tab", "new-product-grid", "cart-modal-overlay"} {
		if !strings.Contains(body, want) {
			t.Fatalf("home page missing %q", want)
		}
	}

	w = do(r, http.MethodGet, "/category?cat=beauty", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Beauté") {
		t.Fatalf("category page status=%d", w.Code)
	}

	// unknown category falls back to the full catalog
	w = do(r, http.MethodGet, "/category?cat=ghost", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Tous les produits") {
		t.Fatalf("fallback category status=%d", w.Code)
	}
}

// failSlot simulates an unreachable backend: reads degrade to an empty cart,
// writes are logged and dropped, the HTTP surface stays 200.
type failSlot struct{}

func (failSlot) Get(ctx context.Context, key string) (string, storage.Status, error) {
	return "", storage.StatusUnavailable, fmt.Errorf("%w: down", storage.ErrUnavailable)
}
func (failSlot) Set(ctx context.Context, key, value string) error {
	return fmt.Errorf("%w: down", storage.ErrUnavailable)
}
func (failSlot) Delete(ctx context.Context, key string) error {
	return fmt.Errorf("%w: down", storage.ErrUnavailable)
}

func TestUnavailableBackendDegrades(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := New(failSlot{}, testContact).Router()

	w := do(r, http.MethodGet, "/api/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("degraded read must stay 200, got %d", w.Code)
	}
	got := decodeCart(t, w)
	if got.Count != 0 || got.Total != "0.00" {
		t.Fatalf("degraded cart: count=%d total=%s", got.Count, got.Total)
	}

	// a write failure is best-effort, not an HTTP error
	w = do(r, http.MethodPost, "/api/cart/items", AddItemRequest{ID: "wireless-buds", Quantity: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("degraded write must stay 200, got %d", w.Code)
	}
}
