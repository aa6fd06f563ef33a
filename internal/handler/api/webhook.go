package api

import (
	"errors"
	"net/http"

	"merch-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Stripe webhook
// @Description Receive signed Stripe events and reconcile orders
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Failed to read body"})
		return
	}

	err = h.cmds.HandleEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, commands.ErrInvalidSignature) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid signature"})
			return
		}
		// Non-2xx makes Stripe redeliver the event later.
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Webhook processing failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
