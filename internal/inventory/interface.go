package inventory

import "context"

// UseCase is the authoritative entry point for inventory mutations and reads.
// Every mutating operation recomputes low-stock alerts and, except for
// ToggleStatus, appends a history entry, as one logical transaction.
type UseCase interface {
	// Item mutations
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	AdjustStock(ctx context.Context, input AdjustStockInput) (AdjustStockOutput, error)
	ToggleStatus(ctx context.Context, id string) (ToggleStatusOutput, error)

	// Reads
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
	Export(ctx context.Context, input ExportInput) error

	// Notifications
	Notifications(ctx context.Context) ([]Notification, error)
	Dismiss(ctx context.Context, id string) error
	RefreshAlerts(ctx context.Context) error
}
