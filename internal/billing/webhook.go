package billing

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seyi-ajadi/invoiceflow/internal/common"
)

// Webhook is the HTTP surface for billing-provider callbacks.
type Webhook struct {
	service *Service
	logger  *slog.Logger
}

func NewWebhook(service *Service, logger *slog.Logger) *Webhook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Webhook{service: service, logger: logger}
}

// Register mounts the webhook routes.
func (w *Webhook) Register(r *gin.Engine) {
	r.POST("/webhooks/billing", w.handleEvent)
}

func (w *Webhook) handleEvent(c *gin.Context) {
	var ev Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
		return
	}

	if err := w.service.HandleEvent(c.Request.Context(), ev); err != nil {
		w.logger.Error("billing.webhook.fail", "type", ev.Type, "email", ev.CustomerEmail, "error", err)
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, common.ErrNotFound):
			// Unknown customer: acknowledge so the provider stops retrying.
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "event processing failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
