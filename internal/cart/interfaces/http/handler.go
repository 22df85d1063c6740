package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/olaria/storefront/internal/cart/application"
	"github.com/olaria/storefront/internal/cart/domain"
	catalogdomain "github.com/olaria/storefront/internal/catalog/domain"
	sessionhttp "github.com/olaria/storefront/internal/session/interfaces/http"
	"github.com/olaria/storefront/pkg/logger"
	"github.com/olaria/storefront/pkg/metrics"
	"github.com/olaria/storefront/pkg/response"
)

type Handler struct {
	app     *application.CartService
	metrics *metrics.Metrics
}

func NewHandler(app *application.CartService, m *metrics.Metrics) *Handler {
	return &Handler{app: app, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/v1/cart")
	g.GET("", h.GetCart)
	g.GET("/count", h.Count)
	g.POST("/items", h.AddItem)
	g.PUT("/items/:id", h.UpdateItem)
	g.DELETE("/items/:id", h.RemoveItem)
}

type addItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	item, err := h.app.AddItem(c.Request.Context(), sessionhttp.SessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		h.metrics.CartMutationsTotal.WithLabelValues("add", "rejected").Inc()
		h.writeError(c, err)
		return
	}

	h.metrics.CartMutationsTotal.WithLabelValues("add", "ok").Inc()
	response.Created(c, item)
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid item id", nil)
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	removed, err := h.app.UpdateItem(c.Request.Context(), sessionhttp.SessionID(c), uint(itemID), req.Quantity)
	if err != nil {
		h.metrics.CartMutationsTotal.WithLabelValues("update", "rejected").Inc()
		h.writeError(c, err)
		return
	}

	h.metrics.CartMutationsTotal.WithLabelValues("update", "ok").Inc()
	response.Success(c, gin.H{"removed": removed})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid item id", nil)
		return
	}

	if err := h.app.RemoveItem(c.Request.Context(), sessionhttp.SessionID(c), uint(itemID)); err != nil {
		h.metrics.CartMutationsTotal.WithLabelValues("remove", "rejected").Inc()
		h.writeError(c, err)
		return
	}

	h.metrics.CartMutationsTotal.WithLabelValues("remove", "ok").Inc()
	response.Success(c, gin.H{"removed": true})
}

func (h *Handler) GetCart(c *gin.Context) {
	view, err := h.app.GetCart(c.Request.Context(), sessionhttp.SessionID(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, view)
}

func (h *Handler) Count(c *gin.Context) {
	count := h.app.Count(c.Request.Context(), sessionhttp.SessionID(c))
	response.Success(c, gin.H{"count": count})
}

// writeError maps domain errors onto statuses; anything unrecognized is a
// transient storage failure and must not leak details.
func (h *Handler) writeError(c *gin.Context, err error) {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, "product not found", nil)
	case errors.Is(err, domain.ErrCartItemNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, "cart item not found", nil)
	case errors.Is(err, domain.ErrProductUnavailable):
		response.ErrorWithStatus(c, http.StatusConflict, "product is out of stock", nil)
	case errors.As(err, &stockErr):
		response.ErrorWithStatus(c, http.StatusConflict, "insufficient stock", gin.H{"max": stockErr.Max})
	default:
		logger.Error(c.Request.Context(), "cart operation failed", "error", err)
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, "temporary failure, please retry", nil)
	}
}
