package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glacefrais/storefront/internal/domain/product"
	"github.com/glacefrais/storefront/internal/observability"
)

// CatalogReader is the read surface of the catalog. Kept as an interface so
// tests can fake it.
type CatalogReader interface {
	All() []product.Product
	GetByID(id string) (product.Product, error)
	ByCategory(category string) []product.Product
	Search(term, category string) []product.Product
	Categories() []string
	Featured() []product.Product
	NextID() int
}

type ProductsHandler struct {
	catalog CatalogReader
	prom    *observability.Prom
}

func NewProductsHandler(catalog CatalogReader, prom *observability.Prom) *ProductsHandler {
	return &ProductsHandler{catalog: catalog, prom: prom}
}

// ListProducts serves GET /products. Selection precedence: id, then q (term
// search scoped by category), then category, then the full catalog. List
// responses are bare arrays and the id lookup a bare object, the shapes the
// storefront pages consume.
func (h *ProductsHandler) ListProducts(ctx *gin.Context) {
	if id := ctx.Query("id"); id != "" {
		h.countQuery("by_id")

		p, err := h.catalog.GetByID(id)

		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				RespondNotFound(ctx, "Product not found")
				return
			}
			RespondInternal(ctx, "Could not fetch product")
			return
		}

		RespondJSONWithETag(ctx, http.StatusOK, p)
		return
	}

	category := ctx.DefaultQuery("category", product.CategoryAll)

	if term, ok := ctx.GetQuery("q"); ok {
		h.countQuery("search")
		RespondJSONWithETag(ctx, http.StatusOK, h.catalog.Search(term, category))
		return
	}

	if category == product.CategoryAll {
		h.countQuery("all")
	} else {
		h.countQuery("by_category")
	}

	RespondJSONWithETag(ctx, http.StatusOK, h.catalog.ByCategory(category))
}

// ListCategories serves GET /products/categories: the distinct category set
// in catalog order, without the "all" sentinel.
func (h *ProductsHandler) ListCategories(ctx *gin.Context) {
	h.countQuery("categories")
	RespondJSONWithETag(ctx, http.StatusOK, h.catalog.Categories())
}

// ListFeatured serves GET /products/featured, the home-page subset.
func (h *ProductsHandler) ListFeatured(ctx *gin.Context) {
	h.countQuery("featured")
	RespondJSONWithETag(ctx, http.StatusOK, h.catalog.Featured())
}

// CreateProduct serves POST /products behind the admin token gate. It
// validates the payload and returns the candidate record without writing it
// back into the catalog: the catalog is immutable for the process lifetime,
// and the non-persisting create is the contract the storefront pages were
// built against.
func (h *ProductsHandler) CreateProduct(ctx *gin.Context) {
	var req product.CreateProductRequest

	if !BindJSON(ctx, &req) {
		return
	}

	p := product.Product{
		ID:          h.catalog.NextID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Featured:    req.Featured,
	}

	ctx.JSON(http.StatusCreated, p)
}

func (h *ProductsHandler) countQuery(op string) {
	if h.prom != nil {
		h.prom.CatalogQueries.WithLabelValues(op).Inc()
	}
}
