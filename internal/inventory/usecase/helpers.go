package usecase

import (
	"context"
	"fmt"
	"strings"

	"inventory-tracker/internal/inventory"
	"inventory-tracker/internal/inventory/alerting"
)

// recomputeAlerts replaces the notification set with the one implied by the
// current item collection. Callers must hold uc.mu.
func (uc *implUseCase) recomputeAlerts(ctx context.Context) ([]inventory.Notification, error) {
	items, err := uc.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	prev, err := uc.repo.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}

	next := alerting.Recompute(prev, items, alerting.Config{
		EscalationContact: uc.cfg.EscalationContact,
	})
	// The repository merges under its own mutex: a notification removed
	// between the snapshot above and this install stays removed.
	stored, err := uc.repo.ReplaceNotifications(ctx, next)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func validateCreate(input inventory.CreateItemInput) error {
	if strings.TrimSpace(input.ID) == "" {
		return fmt.Errorf("%w: id is required", inventory.ErrValidation)
	}
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", inventory.ErrValidation)
	}
	if input.CurrentStock < 0 {
		return fmt.Errorf("%w: current stock cannot be negative", inventory.ErrValidation)
	}
	if input.MinStock < 0 {
		return fmt.Errorf("%w: minimum stock cannot be negative", inventory.ErrValidation)
	}
	return nil
}

func validateUpdate(input inventory.UpdateItemInput) error {
	if strings.TrimSpace(input.ID) == "" {
		return fmt.Errorf("%w: id is required", inventory.ErrValidation)
	}
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", inventory.ErrValidation)
	}
	if input.MinStock < 0 {
		return fmt.Errorf("%w: minimum stock cannot be negative", inventory.ErrValidation)
	}
	return nil
}

func validateAdjust(input inventory.AdjustStockInput) error {
	if strings.TrimSpace(input.ItemID) == "" {
		return fmt.Errorf("%w: item id is required", inventory.ErrValidation)
	}
	if input.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be a positive integer", inventory.ErrValidation)
	}
	if input.Direction != inventory.DirectionIn && input.Direction != inventory.DirectionOut {
		return fmt.Errorf("%w: direction must be %q or %q",
			inventory.ErrValidation, inventory.DirectionIn, inventory.DirectionOut)
	}
	return nil
}
