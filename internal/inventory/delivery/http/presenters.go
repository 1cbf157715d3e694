package http

import (
	"time"

	"inventory-tracker/internal/inventory"
	"inventory-tracker/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	ID            string `json:"id"             binding:"required,min=1,max=64"`
	Name          string `json:"name"           binding:"required,min=1,max=255"`
	Category      string `json:"category"       binding:"max=255"`
	CurrentStock  int    `json:"current_stock"  binding:"min=0"`
	MinStock      int    `json:"min_stock"      binding:"min=0"`
	ManagerEmail  string `json:"manager_email"  binding:"omitempty,email"`
	UnitOfMeasure string `json:"unit_of_measure" binding:"max=64"`
	Description   string `json:"description"    binding:"max=1000"`
}

func (r createReq) toInput() inventory.CreateItemInput {
	return inventory.CreateItemInput{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		CurrentStock:  r.CurrentStock,
		MinStock:      r.MinStock,
		ManagerEmail:  r.ManagerEmail,
		UnitOfMeasure: r.UnitOfMeasure,
		Description:   r.Description,
	}
}

type updateReq struct {
	ID            string `json:"-"` // populated from URI param
	Name          string `json:"name"           binding:"required,min=1,max=255"`
	Category      string `json:"category"       binding:"max=255"`
	MinStock      int    `json:"min_stock"      binding:"min=0"`
	ManagerEmail  string `json:"manager_email"  binding:"omitempty,email"`
	UnitOfMeasure string `json:"unit_of_measure" binding:"max=64"`
	Description   string `json:"description"    binding:"max=1000"`
}

func (r updateReq) toInput() inventory.UpdateItemInput {
	return inventory.UpdateItemInput{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		MinStock:      r.MinStock,
		ManagerEmail:  r.ManagerEmail,
		UnitOfMeasure: r.UnitOfMeasure,
		Description:   r.Description,
	}
}

type adjustStockReq struct {
	ItemID    string `json:"-"` // populated from URI param
	Quantity  int    `json:"quantity"  binding:"required,gt=0"`
	Direction string `json:"direction" binding:"required,oneof=in out"`
}

func (r adjustStockReq) toInput() inventory.AdjustStockInput {
	return inventory.AdjustStockInput{
		ItemID:    r.ItemID,
		Quantity:  r.Quantity,
		Direction: inventory.Direction(r.Direction),
	}
}

type listReq struct {
	Status string `form:"status"  binding:"omitempty,oneof=active inactive all"`
	Search string `form:"search"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=lastModified name stockDesc stockAsc"`
}

func (r listReq) toInput() inventory.ListItemsInput {
	return inventory.ListItemsInput{
		Status: r.Status,
		Search: r.Search,
		SortBy: r.SortBy,
	}
}

type historyReq struct {
	Type   string `form:"type"    binding:"omitempty,oneof=all movements stock-in stock-out created edited"`
	From   string `form:"from"    binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to"      binding:"omitempty,datetime=2006-01-02"`
	Search string `form:"search"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=timestamp itemName itemId"`
}

func (r historyReq) toInput() (inventory.HistoryInput, error) {
	input := inventory.HistoryInput{
		Type:   r.Type,
		Search: r.Search,
		SortBy: r.SortBy,
	}
	if r.From != "" {
		from, err := time.Parse("2006-01-02", r.From)
		if err != nil {
			return input, err
		}
		input.From = from
	}
	if r.To != "" {
		to, err := time.Parse("2006-01-02", r.To)
		if err != nil {
			return input, err
		}
		input.To = to
	}
	return input, nil
}

// --- Response DTOs ---

type itemResp struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	CurrentStock  int               `json:"current_stock"`
	MinStock      int               `json:"min_stock"`
	ManagerEmail  string            `json:"manager_email"`
	UnitOfMeasure string            `json:"unit_of_measure"`
	Description   string            `json:"description"`
	LastModified  response.DateTime `json:"last_modified"`
	Status        string            `json:"status"`
}

func newItemResp(item inventory.Item) itemResp {
	return itemResp{
		ID:            item.ID,
		Name:          item.Name,
		Category:      item.Category,
		CurrentStock:  item.CurrentStock,
		MinStock:      item.MinStock,
		ManagerEmail:  item.ManagerEmail,
		UnitOfMeasure: item.UnitOfMeasure,
		Description:   item.Description,
		LastModified:  response.DateTime(item.LastModified),
		Status:        string(item.Status),
	}
}

type notificationResp struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Message      string            `json:"message"`
	Details      string            `json:"details,omitempty"`
	ItemID       string            `json:"item_id,omitempty"`
	ItemName     string            `json:"item_name,omitempty"`
	CurrentStock int               `json:"current_stock,omitempty"`
	MinStock     int               `json:"min_stock,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
}

func newNotificationResps(notifications []inventory.Notification) []notificationResp {
	out := make([]notificationResp, len(notifications))
	for i, n := range notifications {
		out[i] = notificationResp{
			ID:           n.ID,
			Type:         string(n.Type),
			Message:      n.Message,
			Details:      n.Details,
			ItemID:       n.ItemID,
			ItemName:     n.ItemName,
			CurrentStock: n.CurrentStock,
			MinStock:     n.MinStock,
			CreatedAt:    response.DateTime(n.CreatedAt),
		}
	}
	return out
}

type historyEntryResp struct {
	ID             int64             `json:"id"`
	Type           string            `json:"type"`
	ItemID         string            `json:"item_id"`
	ItemName       string            `json:"item_name"`
	QuantityChange int               `json:"quantity_change,omitempty"`
	Timestamp      response.DateTime `json:"timestamp"`
}

type createResp struct {
	Item          itemResp           `json:"item"`
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newCreateResp(out inventory.CreateItemOutput) createResp {
	return createResp{
		Item:          newItemResp(out.Item),
		Notifications: newNotificationResps(out.Notifications),
	}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out inventory.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}

type adjustStockResp struct {
	Item          itemResp           `json:"item"`
	Entry         historyEntryResp   `json:"entry"`
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newAdjustStockResp(out inventory.AdjustStockOutput) adjustStockResp {
	return adjustStockResp{
		Item: newItemResp(out.Item),
		Entry: historyEntryResp{
			ID:             out.Entry.ID,
			Type:           string(out.Entry.Type),
			ItemID:         out.Entry.ItemID,
			ItemName:       out.Entry.ItemName,
			QuantityChange: out.Entry.QuantityChange,
			Timestamp:      response.DateTime(out.Entry.Timestamp),
		},
		Notifications: newNotificationResps(out.Notifications),
	}
}

type toggleStatusResp struct {
	Item          itemResp           `json:"item"`
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newToggleStatusResp(out inventory.ToggleStatusOutput) toggleStatusResp {
	return toggleStatusResp{
		Item:          newItemResp(out.Item),
		Notifications: newNotificationResps(out.Notifications),
	}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out inventory.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{Items: items, Total: out.Total}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out inventory.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type historyResp struct {
	Entries []historyEntryResp `json:"entries"`
	Total   int                `json:"total"`
}

func (h *handler) newHistoryResp(out inventory.HistoryOutput) historyResp {
	entries := make([]historyEntryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = historyEntryResp{
			ID:             e.ID,
			Type:           string(e.Type),
			ItemID:         e.ItemID,
			ItemName:       e.ItemName,
			QuantityChange: e.QuantityChange,
			Timestamp:      response.DateTime(e.Timestamp),
		}
	}
	return historyResp{Entries: entries, Total: out.Total}
}

type notificationsResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newNotificationsResp(notifications []inventory.Notification) notificationsResp {
	return notificationsResp{Notifications: newNotificationResps(notifications)}
}
