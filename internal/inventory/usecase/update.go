package usecase

import (
	"context"
	"time"

	"inventory-tracker/internal/inventory"
	repo "inventory-tracker/internal/inventory/repository"
)

// Update edits an existing item's metadata. CurrentStock and the id itself
// are immutable through this path. An "edited" history entry is appended and
// alerts are recomputed (editing MinStock can raise or resolve an alert).
func (uc *implUseCase) Update(ctx context.Context, input inventory.UpdateItemInput) (inventory.UpdateItemOutput, error) {
	if err := validateUpdate(input); err != nil {
		return inventory.UpdateItemOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return inventory.UpdateItemOutput{}, inventory.ErrNotFound
	}

	now := time.Now()
	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:            existing.ID,
		Name:          input.Name,
		Category:      input.Category,
		CurrentStock:  existing.CurrentStock,
		MinStock:      input.MinStock,
		ManagerEmail:  input.ManagerEmail,
		UnitOfMeasure: input.UnitOfMeasure,
		Description:   input.Description,
		Status:        existing.Status,
		LastModified:  now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}

	if _, err := uc.recomputeAlerts(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.Update recomputeAlerts: %v", err)
		return inventory.UpdateItemOutput{}, err
	}

	if _, err := uc.repo.AppendHistory(ctx, repo.AppendHistoryOptions{
		Type:      inventory.HistoryEdited,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Timestamp: now,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Update AppendHistory: %v", err)
		return inventory.UpdateItemOutput{}, err
	}

	return inventory.UpdateItemOutput{Item: item}, nil
}
