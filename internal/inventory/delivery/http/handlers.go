package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"inventory-tracker/internal/inventory"
	"inventory-tracker/pkg/response"
)

// Create godoc
// @Summary     Create a new inventory item
// @Description Registers a new item. The id must be unique ignoring case.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - id already exists"
// @Router      /api/v1/inventory/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List inventory items
// @Description Returns the filtered, sorted inventory view.
// @Tags        Inventory
// @Produce     json
// @Param       status  query string false "Filter by status (active/inactive/all)"
// @Param       search  query string false "Substring match on name or id"
// @Param       sort_by query string false "Sort key (lastModified/name/stockDesc/stockAsc)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/inventory/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by id, matched ignoring case.
// @Tags        Inventory
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/inventory/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Edit an item
// @Description Updates item metadata. Stock and id are immutable here.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/inventory/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// AdjustStock godoc
// @Summary     Record a stock movement
// @Description Registers a stock-in or stock-out for an item.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Item ID (case-insensitive)"
// @Param       body body adjustStockReq true "Movement data"
// @Success     200 {object} adjustStockResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Inactive item or insufficient stock"
// @Router      /api/v1/inventory/items/{id}/stock [POST]
func (h *handler) AdjustStock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAdjustStockReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AdjustStock(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AdjustStock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAdjustStockResp(output))
}

// ToggleStatus godoc
// @Summary     Toggle item status
// @Description Flips an item between active and inactive.
// @Tags        Inventory
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} toggleStatusResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/inventory/items/{id}/status [PATCH]
func (h *handler) ToggleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.ToggleStatus(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleStatusResp(output))
}

// Export godoc
// @Summary     Export inventory as CSV
// @Description Downloads the current filtered view as a CSV file.
// @Tags        Inventory
// @Produce     text/csv
// @Param       status  query string false "Filter by status (active/inactive/all)"
// @Param       search  query string false "Substring match on name or id"
// @Param       sort_by query string false "Sort key"
// @Success     200 {string} string "CSV payload"
// @Failure     422 {object} response.Resp "Nothing to export"
// @Router      /api/v1/inventory/items/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.uc.Export(ctx, inventory.ExportInput{Filter: req.toInput(), Writer: &buf}); err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	filename := fmt.Sprintf("inventory_%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Notifications godoc
// @Summary     List notifications
// @Description Returns the current alert and success notifications.
// @Tags        Notifications
// @Produce     json
// @Success     200 {object} notificationsResp
// @Router      /api/v1/inventory/notifications [GET]
func (h *handler) Notifications(c *gin.Context) {
	ctx := c.Request.Context()

	notifications, err := h.uc.Notifications(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Notifications: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNotificationsResp(notifications))
}

// Dismiss godoc
// @Summary     Dismiss a notification
// @Description Removes a notification by id. Idempotent.
// @Tags        Notifications
// @Produce     json
// @Param       id path string true "Notification ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/inventory/notifications/{id} [DELETE]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Dismiss(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Dismiss: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// History godoc
// @Summary     Query the audit history
// @Description Returns history entries with type/date/search filters applied.
// @Tags        History
// @Produce     json
// @Param       type    query string false "Type filter (all/movements/stock-in/stock-out/created/edited)"
// @Param       from    query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       to      query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       search  query string false "Substring match on item name or id"
// @Param       sort_by query string false "Sort key (timestamp/itemName/itemId)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/inventory/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
