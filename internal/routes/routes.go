package routes

import (
	"ruandri_backend/internal/handlers"
	"ruandri_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.PaymentHandler.RegisterRoutes(api)
	}

	logger.Info("Payment routes registered under /api/v1/razorpay")
}
