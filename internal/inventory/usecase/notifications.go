package usecase

import (
	"context"

	"inventory-tracker/internal/inventory"
)

// Notifications returns the current notification set in display order.
func (uc *implUseCase) Notifications(ctx context.Context) ([]inventory.Notification, error) {
	return uc.repo.ListNotifications(ctx)
}

// Dismiss removes a notification by id and cancels any pending auto-expiry.
// Dismissing an absent id is a no-op.
func (uc *implUseCase) Dismiss(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.RemoveNotification(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Dismiss RemoveNotification: %v", err)
		return err
	}
	// Evicting here triggers a second removal of the same id, which the
	// repository treats as a no-op. The eviction callback only touches the
	// repository, never uc.mu, so evicting under the lock cannot deadlock.
	uc.expiry.Remove(id)
	return nil
}

// RefreshAlerts recomputes low-stock alerts from current state without
// mutating any item. Used at startup to surface alerts for seeded data.
func (uc *implUseCase) RefreshAlerts(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.recomputeAlerts(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.RefreshAlerts: %v", err)
		return err
	}
	return nil
}
