package repository

import (
	"context"

	"inventory-tracker/internal/inventory"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	ItemRepository
	NotificationRepository
	HistoryRepository
}

// ItemRepository defines data access for Items. The store is the only
// component that constructs or mutates Items.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (inventory.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (inventory.Item, error)
	ListItems(ctx context.Context) ([]inventory.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (inventory.Item, error)
}

// NotificationRepository owns the notification set.
type NotificationRepository interface {
	ListNotifications(ctx context.Context) ([]inventory.Notification, error)
	// ReplaceNotifications installs a recomputed set in one critical section:
	// the alert subset is taken from the argument, non-alerts keep whatever is
	// currently stored. A removal racing the recompute is therefore never
	// undone. Returns the stored result.
	ReplaceNotifications(ctx context.Context, notifications []inventory.Notification) ([]inventory.Notification, error)
	AppendNotification(ctx context.Context, n inventory.Notification) error
	// RemoveNotification is idempotent: removing an absent id is a no-op.
	RemoveNotification(ctx context.Context, id string) error
}

// HistoryRepository owns the append-only audit log.
type HistoryRepository interface {
	AppendHistory(ctx context.Context, opt AppendHistoryOptions) (inventory.HistoryEntry, error)
	ListHistory(ctx context.Context) ([]inventory.HistoryEntry, error)
}
