package http

import (
	"github.com/gin-gonic/gin"

	"inventory-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The export route is registered before the parameterized detail route so
// gin resolves it as a static segment.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.RateLimit(), h.Create)
		items.GET("", h.List)
		items.GET("/export", h.Export)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", mw.RateLimit(), h.Update)
		items.POST("/:id/stock", mw.RateLimit(), h.AdjustStock)
		items.PATCH("/:id/status", mw.RateLimit(), h.ToggleStatus)
	}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.Notifications)
		notifications.DELETE("/:id", h.Dismiss)
	}

	rg.GET("/history", h.History)
}
