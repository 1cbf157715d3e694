package memory

import (
	"context"

	"inventory-tracker/internal/inventory"
	repo "inventory-tracker/internal/inventory/repository"
)

// AppendHistory records an audit entry in the ledger, which assigns the id.
func (r *implRepository) AppendHistory(ctx context.Context, opt repo.AppendHistoryOptions) (inventory.HistoryEntry, error) {
	return r.history.Append(inventory.HistoryEntry{
		Type:           opt.Type,
		ItemID:         opt.ItemID,
		ItemName:       opt.ItemName,
		QuantityChange: opt.QuantityChange,
		Timestamp:      opt.Timestamp,
	}), nil
}

// ListHistory returns a copy of the ledger, most recent first.
func (r *implRepository) ListHistory(ctx context.Context) ([]inventory.HistoryEntry, error) {
	return r.history.Entries(), nil
}
