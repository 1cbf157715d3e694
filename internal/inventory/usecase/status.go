package usecase

import (
	"context"
	"time"

	"inventory-tracker/internal/inventory"
	repo "inventory-tracker/internal/inventory/repository"
)

// ToggleStatus flips an item between active and inactive and recomputes
// alerts (deactivating a low item resolves its alert). Toggling is not an
// audited change: no history entry is appended.
func (uc *implUseCase) ToggleStatus(ctx context.Context, id string) (inventory.ToggleStatusOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleStatus GetOneItem: %v", err)
		return inventory.ToggleStatusOutput{}, err
	}
	if existing.ID == "" {
		return inventory.ToggleStatusOutput{}, inventory.ErrNotFound
	}

	status := inventory.StatusActive
	if existing.Status == inventory.StatusActive {
		status = inventory.StatusInactive
	}

	item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:            existing.ID,
		Name:          existing.Name,
		Category:      existing.Category,
		CurrentStock:  existing.CurrentStock,
		MinStock:      existing.MinStock,
		ManagerEmail:  existing.ManagerEmail,
		UnitOfMeasure: existing.UnitOfMeasure,
		Description:   existing.Description,
		Status:        status,
		LastModified:  time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleStatus UpdateItem: %v", err)
		return inventory.ToggleStatusOutput{}, err
	}

	notifications, err := uc.recomputeAlerts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleStatus recomputeAlerts: %v", err)
		return inventory.ToggleStatusOutput{}, err
	}

	return inventory.ToggleStatusOutput{
		Item:          item,
		Notifications: notifications,
	}, nil
}
