package web

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eafshoop/storefront/internal/catalog"
	"github.com/eafshoop/storefront/internal/render"
)

// pageData is the shared template payload. The markup fields are fragments
// produced by the render package; everything else is header/footer chrome.
type pageData struct {
	Title      string
	Categories []catalog.Category
	ActiveCat  string
	SortBy     string
	CartCount  int
	Year       int

	SectionTitle string
	Grid         template.HTML
	Carousel     template.HTML

	Category catalog.Category

	Query       string
	ResultCount string
}

func (s *Server) basePage(c *gin.Context, title string) pageData {
	return pageData{
		Title:      title,
		Categories: catalog.Categories,
		ActiveCat:  catalog.CategoryAll,
		SortBy:     catalog.SortDefault,
		CartCount:  s.cartStore(c).Count(c.Request.Context()),
		Year:       time.Now().Year(),
	}
}

func (s *Server) homePage(c *gin.Context) {
	catID := c.DefaultQuery("cat", catalog.CategoryAll)
	sortBy := c.DefaultQuery("sort", catalog.SortDefault)

	products := catalog.Sort(catalog.ByCategory(catID), sortBy)

	data := s.basePage(c, "EAF Shoop")
	data.ActiveCat = catID
	data.SortBy = sortBy
	data.SectionTitle = "Tous les produits"
	if cat, ok := catalog.CategoryByID(catID); ok {
		data.SectionTitle = cat.Name
	}
	data.Grid = template.HTML(render.ProductGrid(products, "Essayez une autre catégorie."))
	data.Carousel = template.HTML(render.CarouselSet(catalog.NewProducts()))

	c.HTML(http.StatusOK, "home.html", data)
}

func (s *Server) categoryPage(c *gin.Context) {
	catID := c.DefaultQuery("cat", catalog.CategoryAll)
	sortBy := c.DefaultQuery("sort", catalog.SortDefault)

	cat, ok := catalog.CategoryByID(catID)
	if !ok {
		cat, _ = catalog.CategoryByID(catalog.CategoryAll)
		catID = catalog.CategoryAll
	}
	products := catalog.Sort(catalog.ByCategory(catID), sortBy)

	data := s.basePage(c, cat.Name+" — EAF Shoop")
	data.ActiveCat = catID
	data.SortBy = sortBy
	data.Category = cat
	data.SectionTitle = cat.Name
	data.Grid = template.HTML(render.ProductGrid(products, "Essayez une autre catégorie."))

	c.HTML(http.StatusOK, "category.html", data)
}

// searchPage renders results for the session's stored term; an explicit ?q=
// overrides it (and does not rewrite the stored term — only the search box
// does that, through the API).
func (s *Server) searchPage(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		stored, _, _ := s.slots.Get(c.Request.Context(), searchKey(c))
		query = stored
	}

	results := catalog.Search(query)

	data := s.basePage(c, "Recherche — EAF Shoop")
	data.Query = query
	plural := ""
	if len(results) != 1 {
		plural = "s"
	}
	data.ResultCount = fmt.Sprintf("%d résultat%s", len(results), plural)
	data.Grid = template.HTML(render.ProductGrid(results, "Essayez un autre terme de recherche."))

	c.HTML(http.StatusOK, "search.html", data)
}
