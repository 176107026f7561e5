package web

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eafshoop/storefront/internal/cart"
	"github.com/eafshoop/storefront/internal/catalog"
	"github.com/eafshoop/storefront/internal/checkout"
	"github.com/eafshoop/storefront/internal/render"
)

// HTTPError is the standard error body.
type HTTPError struct {
	Error string `json:"error"`
}

// CartResponse carries the server-rendered drawer fragment plus the derived
// numbers the page chrome needs.
type CartResponse struct {
	HTML    string          `json:"html"`
	Total   string          `json:"total"`
	Count   int             `json:"count"`
	Items   []cart.LineItem `json:"items"`
	Message string          `json:"message,omitempty"`
}

// AddItemRequest payload for POST /api/cart/items.
type AddItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// SetQuantityRequest payload for PATCH /api/cart/items/:id.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CheckoutRequest payload for POST /api/checkout.
type CheckoutRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CheckoutResponse carries the outbound order link the client opens.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// SearchRequest payload for POST /api/search.
type SearchRequest struct {
	Query string `json:"q"`
}

// ProductListResponse is the re-filter payload for the category tab bar.
type ProductListResponse struct {
	Cat   string `json:"cat"`
	Sort  string `json:"sort"`
	Title string `json:"title"`
	HTML  string `json:"html"`
	Count int    `json:"count"`
}

func (s *Server) cartPayload(c *gin.Context, msg string) CartResponse {
	st := s.cartStore(c)
	items := st.Items(c.Request.Context())
	return CartResponse{
		HTML:    render.CartItems(items),
		Total:   cart.TotalOf(items),
		Count:   cart.CountOf(items),
		Items:   items,
		Message: msg,
	}
}

// listProducts re-filters the grid without a page navigation: the tab bar and
// the sort select both call it and swap the returned fragment in.
func (s *Server) listProducts(c *gin.Context) {
	catID := c.DefaultQuery("cat", catalog.CategoryAll)
	sortBy := c.DefaultQuery("sort", catalog.SortDefault)

	products := catalog.Sort(catalog.ByCategory(catID), sortBy)

	title := "Tous les produits"
	if cat, ok := catalog.CategoryByID(catID); ok {
		title = cat.Name
	}
	c.JSON(http.StatusOK, ProductListResponse{
		Cat:   catID,
		Sort:  sortBy,
		Title: title,
		HTML:  render.ProductGrid(products, "Essayez une autre catégorie."),
		Count: len(products),
	})
}

func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.cartPayload(c, ""))
}

func (s *Server) addCartItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid payload"})
		return
	}
	p, ok := catalog.ProductByID(req.ID)
	if !ok {
		c.JSON(http.StatusNotFound, HTTPError{Error: cart.MsgInvalidProduct})
		return
	}
	if p.Stock <= 0 {
		c.JSON(http.StatusConflict, HTTPError{Error: "Produit indisponible."})
		return
	}

	// Stepper bounds are an input-layer rule: clamp to 1..99 here, the store
	// itself only guarantees qty ≥ 1.
	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}
	if qty > 99 {
		qty = 99
	}

	if msg := s.cartStore(c).Add(c.Request.Context(), p, qty); msg != "" {
		c.JSON(http.StatusBadRequest, HTTPError{Error: msg})
		return
	}
	c.JSON(http.StatusOK, s.cartPayload(c, fmt.Sprintf("✅ %q ajouté au panier !", p.Name)))
}

func (s *Server) setCartItemQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid payload"})
		return
	}
	s.cartStore(c).SetQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, s.cartPayload(c, ""))
}

func (s *Server) removeCartItem(c *gin.Context) {
	s.cartStore(c).Remove(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, s.cartPayload(c, ""))
}

func (s *Server) clearCart(c *gin.Context) {
	s.cartStore(c).Clear(c.Request.Context())
	c.JSON(http.StatusOK, s.cartPayload(c, ""))
}

// checkoutOrder validates the buyer form against the current cart and, when
// everything holds, answers with the wa.me link carrying the composed order
// message. Opening the link is the client's navigation side effect; nothing
// is awaited here.
func (s *Server) checkoutOrder(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid payload"})
		return
	}

	st := s.cartStore(c)
	items := st.Items(c.Request.Context())
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, HTTPError{Error: cart.MsgEmptyCart})
		return
	}

	form := checkout.Form{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		Phone:   strings.TrimSpace(req.Phone),
	}
	if msg := cart.ValidateCheckoutForm(form.Name, form.Address, form.Phone); msg != "" {
		c.JSON(http.StatusBadRequest, HTTPError{Error: msg})
		return
	}

	msg := checkout.ComposeMessage(form, items)
	c.JSON(http.StatusOK, CheckoutResponse{URL: checkout.OrderLink(s.contact, msg)})
}

// storeSearchTerm persists the lowercased term in the session's search slot;
// the search page reads it on load.
func (s *Server) storeSearchTerm(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, HTTPError{Error: "invalid payload"})
		return
	}
	q := strings.ToLower(strings.TrimSpace(req.Query))
	if q == "" {
		c.JSON(http.StatusBadRequest, HTTPError{Error: "Veuillez entrer un terme de recherche."})
		return
	}
	// best effort: a failed write only costs the stored term
	if err := s.slots.Set(c.Request.Context(), searchKey(c), q); err != nil {
		log.Printf("[web] search slot: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "q": q})
}
