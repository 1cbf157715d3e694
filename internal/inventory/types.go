package inventory

import (
	"io"
	"time"
)

// Status gates whether an item participates in stock movements and alerting.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Direction of a stock movement.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// HistoryType classifies an audit record.
type HistoryType string

const (
	HistoryStockIn  HistoryType = "stock-in"
	HistoryStockOut HistoryType = "stock-out"
	HistoryCreated  HistoryType = "created"
	HistoryEdited   HistoryType = "edited"
)

// NotificationType distinguishes derived low-stock alerts from transient
// success confirmations.
type NotificationType string

const (
	NotificationAlert   NotificationType = "alert"
	NotificationSuccess NotificationType = "success"
)

// Item is one tracked stock-keeping unit. The ID is immutable after creation
// and unique ignoring case.
type Item struct {
	ID            string
	Name          string
	Category      string
	CurrentStock  int
	MinStock      int
	ManagerEmail  string
	UnitOfMeasure string
	Description   string
	LastModified  time.Time
	Status        Status
}

// Notification is a derived signal, never persisted with the item.
// Alert notifications carry the item linkage fields; success notifications
// carry message/details only.
type Notification struct {
	ID           string
	Type         NotificationType
	Message      string
	Details      string
	ItemID       string
	ItemName     string
	CurrentStock int
	MinStock     int
	CreatedAt    time.Time
}

// HistoryEntry is an immutable audit record. ItemName is a denormalized copy
// of the name at the time of the event.
type HistoryEntry struct {
	ID             int64
	Type           HistoryType
	ItemID         string
	ItemName       string
	QuantityChange int
	Timestamp      time.Time
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	ID            string
	Name          string
	Category      string
	CurrentStock  int
	MinStock      int
	ManagerEmail  string
	UnitOfMeasure string
	Description   string
}

// UpdateItemInput edits an existing item's metadata. CurrentStock and ID are
// immutable through this path.
type UpdateItemInput struct {
	ID            string
	Name          string
	Category      string
	MinStock      int
	ManagerEmail  string
	UnitOfMeasure string
	Description   string
}

type AdjustStockInput struct {
	ItemID    string
	Quantity  int
	Direction Direction
}

type ListItemsInput struct {
	Status string
	Search string
	SortBy string
}

type HistoryInput struct {
	Type   string
	From   time.Time
	To     time.Time
	Search string
	SortBy string
}

type ExportInput struct {
	Filter ListItemsInput
	Writer io.Writer
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item          Item
	Notifications []Notification
}

type UpdateItemOutput struct {
	Item Item
}

type AdjustStockOutput struct {
	Item          Item
	Entry         HistoryEntry
	Notifications []Notification
}

type ToggleStatusOutput struct {
	Item          Item
	Notifications []Notification
}

type DetailItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
	Total int
}

type HistoryOutput struct {
	Entries []HistoryEntry
	Total   int
}
