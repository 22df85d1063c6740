package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olaria/storefront/internal/contact/application"
	"github.com/olaria/storefront/internal/contact/domain"
	"github.com/olaria/storefront/pkg/logger"
	"github.com/olaria/storefront/pkg/metrics"
	"github.com/olaria/storefront/pkg/response"
)

type Handler struct {
	app     *application.ContactService
	metrics *metrics.Metrics
}

func NewHandler(app *application.ContactService, m *metrics.Metrics) *Handler {
	return &Handler{app: app, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/v1/contact", h.Submit)
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	msg, err := h.app.Submit(c.Request.Context(), application.SubmitCommand{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if errors.Is(err, domain.ErrValidation) {
		response.ErrorWithStatus(c, http.StatusBadRequest, "please fill in all fields", nil)
		return
	}
	if err != nil {
		logger.Error(c.Request.Context(), "failed to save contact message", "error", err)
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, "temporary failure, please retry", nil)
		return
	}

	h.metrics.ContactMessagesTotal.Inc()
	response.Created(c, gin.H{"id": msg.ID})
}
