package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inventoryHTTP "inventory-tracker/internal/inventory/delivery/http"
	"inventory-tracker/internal/middleware"
)

// setupInventoryDomain wires the inventory use case to its HTTP handler and
// registers the routes under /api/v1/inventory.
func (srv *HTTPServer) setupInventoryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := inventoryHTTP.New(srv.l, srv.inventoryUC)
	inventoryHTTP.RegisterRoutes(api.Group("/inventory"), h, mw)

	srv.l.Infof(ctx, "Inventory domain registered")
	return nil
}
