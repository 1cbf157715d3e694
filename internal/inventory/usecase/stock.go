package usecase

import (
	"context"
	"time"

	"inventory-tracker/internal/inventory"
	repo "inventory-tracker/internal/inventory/repository"
)

// AdjustStock records a stock movement. The item id is matched ignoring
// case. Movements on inactive items are rejected, and a stock-out that would
// take the quantity below zero aborts with no mutation, no history entry and
// no alert recompute.
func (uc *implUseCase) AdjustStock(ctx context.Context, input inventory.AdjustStockInput) (inventory.AdjustStockOutput, error) {
	if err := validateAdjust(input); err != nil {
		return inventory.AdjustStockOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	target, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ItemID, FoldCase: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AdjustStock GetOneItem: %v", err)
		return inventory.AdjustStockOutput{}, err
	}
	if target.ID == "" {
		return inventory.AdjustStockOutput{}, inventory.ErrNotFound
	}
	if target.Status == inventory.StatusInactive {
		return inventory.AdjustStockOutput{}, inventory.ErrInactiveItem
	}

	newStock := target.CurrentStock + input.Quantity
	historyType := inventory.HistoryStockIn
	if input.Direction == inventory.DirectionOut {
		if input.Quantity > target.CurrentStock {
			return inventory.AdjustStockOutput{}, inventory.ErrNegativeStock
		}
		newStock = target.CurrentStock - input.Quantity
		historyType = inventory.HistoryStockOut
	}

	now := time.Now()
	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:            target.ID,
		Name:          target.Name,
		Category:      target.Category,
		CurrentStock:  newStock,
		MinStock:      target.MinStock,
		ManagerEmail:  target.ManagerEmail,
		UnitOfMeasure: target.UnitOfMeasure,
		Description:   target.Description,
		Status:        target.Status,
		LastModified:  now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AdjustStock UpdateItem: %v", err)
		return inventory.AdjustStockOutput{}, err
	}

	notifications, err := uc.recomputeAlerts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AdjustStock recomputeAlerts: %v", err)
		return inventory.AdjustStockOutput{}, err
	}

	entry, err := uc.repo.AppendHistory(ctx, repo.AppendHistoryOptions{
		Type:           historyType,
		ItemID:         item.ID,
		ItemName:       item.Name,
		QuantityChange: input.Quantity,
		Timestamp:      now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AdjustStock AppendHistory: %v", err)
		return inventory.AdjustStockOutput{}, err
	}

	return inventory.AdjustStockOutput{
		Item:          item,
		Entry:         entry,
		Notifications: notifications,
	}, nil
}
