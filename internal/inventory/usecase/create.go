package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"inventory-tracker/internal/inventory"
	repo "inventory-tracker/internal/inventory/repository"
)

// Create registers a new item. The id must be unique ignoring case. The new
// item starts active, a "created" history entry is appended, alerts are
// recomputed, and a transient success notification is emitted that
// auto-dismisses after the configured delay.
func (uc *implUseCase) Create(ctx context.Context, input inventory.CreateItemInput) (inventory.CreateItemOutput, error) {
	if err := validateCreate(input); err != nil {
		return inventory.CreateItemOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID, FoldCase: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
		return inventory.CreateItemOutput{}, err
	}
	if existing.ID != "" {
		return inventory.CreateItemOutput{}, inventory.ErrDuplicateID
	}

	now := time.Now()
	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:            input.ID,
		Name:          input.Name,
		Category:      input.Category,
		CurrentStock:  input.CurrentStock,
		MinStock:      input.MinStock,
		ManagerEmail:  input.ManagerEmail,
		UnitOfMeasure: input.UnitOfMeasure,
		Description:   input.Description,
		Status:        inventory.StatusActive,
		LastModified:  now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return inventory.CreateItemOutput{}, err
	}

	notifications, err := uc.recomputeAlerts(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create recomputeAlerts: %v", err)
		return inventory.CreateItemOutput{}, err
	}

	if _, err := uc.repo.AppendHistory(ctx, repo.AppendHistoryOptions{
		Type:      inventory.HistoryCreated,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Timestamp: item.LastModified,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Create AppendHistory: %v", err)
		return inventory.CreateItemOutput{}, err
	}

	success := inventory.Notification{
		ID:        uuid.NewString(),
		Type:      inventory.NotificationSuccess,
		Message:   "Asset created",
		Details:   fmt.Sprintf("Asset %q has been added.", item.Name),
		CreatedAt: now,
	}
	if err := uc.repo.AppendNotification(ctx, success); err != nil {
		uc.l.Errorf(ctx, "uc.Create AppendNotification: %v", err)
		return inventory.CreateItemOutput{}, err
	}
	uc.expiry.Add(success.ID, struct{}{})

	return inventory.CreateItemOutput{
		Item:          item,
		Notifications: append(notifications, success),
	}, nil
}
