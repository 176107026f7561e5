// Package web wires the storefront pages and the cart API onto gin. One
// presentation module serves all three pages (catalog, category, search),
// parameterized by page context instead of duplicating controller logic.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eafshoop/storefront/internal/cart"
	"github.com/eafshoop/storefront/internal/httpx"
	"github.com/eafshoop/storefront/internal/storage"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Server holds the injected collaborators of the page controllers: the slot
// backend the carts persist into and the decoded contact number checkout
// hands orders to.
type Server struct {
	slots   storage.Slot
	contact string
}

func New(slots storage.Slot, contact string) *Server {
	return &Server{slots: slots, contact: contact}
}

// Router builds the gin engine: request-id and logging middleware, the
// session cookie that names each visitor's cart slot, embedded templates and
// assets, then the page and API routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.Session())

	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(staticRoot))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/", s.homePage)
	r.GET("/category", s.categoryPage)
	r.GET("/search", s.searchPage)

	api := r.Group("/api")
	{
		api.GET("/products", s.listProducts)
		api.GET("/cart", s.getCart)
		api.POST("/cart/items", s.addCartItem)
		api.PATCH("/cart/items/:id", s.setCartItemQuantity)
		api.DELETE("/cart/items/:id", s.removeCartItem)
		api.DELETE("/cart", s.clearCart)
		api.POST("/checkout", s.checkoutOrder)
		api.POST("/search", s.storeSearchTerm)
	}
	return r
}

// cartStore binds the request's session to its cart slot.
func (s *Server) cartStore(c *gin.Context) *cart.Store {
	return cart.NewStore(s.slots, "cart:"+httpx.SessionID(c))
}

// searchKey names the session-scoped slot holding the last search term.
func searchKey(c *gin.Context) string {
	return "search:" + httpx.SessionID(c)
}
