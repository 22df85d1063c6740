package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/olaria/storefront/internal/catalog/application"
	"github.com/olaria/storefront/internal/catalog/domain"
	"github.com/olaria/storefront/pkg/logger"
	"github.com/olaria/storefront/pkg/response"
)

type Handler struct {
	app *application.CatalogQueryService
}

func NewHandler(app *application.CatalogQueryService) *Handler {
	return &Handler{app: app}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/v1")
	g.GET("/products", h.ListProducts)
	g.GET("/products/featured", h.FeaturedProducts)
	g.GET("/products/newest", h.NewestProducts)
	g.GET("/products/:id", h.GetProduct)
	g.GET("/categories", h.Categories)
}

func (h *Handler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	products, err := h.app.ListProducts(c.Request.Context(), category, search)
	if err != nil {
		logger.Error(c.Request.Context(), "failed to list products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, "failed to list products", nil)
		return
	}
	response.Success(c, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	detail, err := h.app.GetProduct(c.Request.Context(), uint(id))
	if errors.Is(err, domain.ErrProductNotFound) {
		response.ErrorWithStatus(c, http.StatusNotFound, "product not found", nil)
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "failed to get product", "id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, "failed to get product", nil)
		return
	}
	response.Success(c, detail)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.app.Categories(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "failed to list categories", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, "failed to list categories", nil)
		return
	}
	response.Success(c, categories)
}

func (h *Handler) FeaturedProducts(c *gin.Context) {
	products, err := h.app.FeaturedProducts(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "failed to list featured products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, "failed to list featured products", nil)
		return
	}
	response.Success(c, products)
}

func (h *Handler) NewestProducts(c *gin.Context) {
	products, err := h.app.NewestProducts(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "failed to list newest products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, "failed to list newest products", nil)
		return
	}
	response.Success(c, products)
}
