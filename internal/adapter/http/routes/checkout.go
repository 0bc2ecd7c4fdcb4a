package routes

import (
	"github.com/waqaskhan1437/wishesu-sub006/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathWebhook  = "/webhook"
	PathCleanup  = "/cleanup"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, webhookHandler *handlers.WebhookHandler, cleanupHandler *handlers.CleanupHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.InitiateCheckout)
		checkout.POST("/dynamic-plan", checkoutHandler.InitiateDynamicPlanCheckout)
	}

	// Provider-facing and operator-facing endpoints.
	rg.POST(PathWebhook, webhookHandler.HandleEvent)
	rg.POST(PathCleanup, cleanupHandler.RunCleanup)
}
