package routes

import (
	"cncquote/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes. The surface is deliberately
// flat: the original clients call /, /upload and /quote at the root.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("/")
	{
		appHandlers.HealthHandler.RegisterRoutes(root)
		appHandlers.UploadHandler.RegisterRoutes(root)
		appHandlers.QuoteHandler.RegisterRoutes(root)
	}
}
