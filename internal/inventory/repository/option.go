package repository

import (
	"time"

	"inventory-tracker/internal/inventory"
)

// CreateItemOptions holds the full payload for a new Item.
type CreateItemOptions struct {
	ID            string
	Name          string
	Category      string
	CurrentStock  int
	MinStock      int
	ManagerEmail  string
	UnitOfMeasure string
	Description   string
	Status        inventory.Status
	LastModified  time.Time
}

// GetOneItemOptions selects a single Item by id. FoldCase matches the id
// ignoring case (item ids are unique ignoring case).
type GetOneItemOptions struct {
	ID       string
	FoldCase bool
}

// UpdateItemOptions replaces the mutable fields of the Item with the given
// exact id. The id itself is immutable.
type UpdateItemOptions struct {
	ID            string
	Name          string
	Category      string
	CurrentStock  int
	MinStock      int
	ManagerEmail  string
	UnitOfMeasure string
	Description   string
	Status        inventory.Status
	LastModified  time.Time
}

// AppendHistoryOptions holds the fields of a new audit record; the ledger
// assigns the id.
type AppendHistoryOptions struct {
	Type           inventory.HistoryType
	ItemID         string
	ItemName       string
	QuantityChange int
	Timestamp      time.Time
}
