package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkpicture/perfect-bites/utils"
)

type CheckoutResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// CheckoutHandler composes the order message and hands back the wa.me
// deep link the browser opens in a new tab. Hand-off is fire-and-forget:
// nothing comes back from WhatsApp. The delivery draft is reset right
// away; the cart stays as it is until the user clears it.
func CheckoutHandler(c *gin.Context) {
	sess, ok := CurrentSession(c)
	if !ok {
		return
	}

	if sess.Cart.IsEmpty() {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
		return
	}

	message := utils.ComposeOrderMessage(
		sess.Cart.Lines(),
		sess.Cart.TotalPrice(),
		sess.Draft(),
		sess.Probe.Coordinates(),
	)

	sess.ResetDraft()

	c.JSON(http.StatusOK, CheckoutResponse{
		Message:     message,
		WhatsAppURL: utils.BuildWhatsAppURL(WhatsAppNumber, message),
	})
}
