package memory

import (
	"context"

	"inventory-tracker/internal/inventory"
)

// ListNotifications returns a copy of the current notification set in
// display order.
func (r *implRepository) ListNotifications(ctx context.Context) ([]inventory.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out, nil
}

// ReplaceNotifications installs a recomputed notification set. The alert
// subset comes from the argument; non-alerts keep what is currently stored,
// so a removal that landed after the recompute snapshot was taken is not
// undone here.
func (r *implRepository) ReplaceNotifications(ctx context.Context, notifications []inventory.Notification) ([]inventory.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]inventory.Notification, 0, len(notifications))
	for _, n := range r.notifications {
		if n.Type != inventory.NotificationAlert {
			next = append(next, n)
		}
	}
	for _, n := range notifications {
		if n.Type == inventory.NotificationAlert {
			next = append(next, n)
		}
	}
	r.notifications = next

	out := make([]inventory.Notification, len(next))
	copy(out, next)
	return out, nil
}

// AppendNotification adds a notification at the end of the set.
func (r *implRepository) AppendNotification(ctx context.Context, n inventory.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, n)
	return nil
}

// RemoveNotification drops the notification with the given id. Removing an
// absent id is a no-op.
func (r *implRepository) RemoveNotification(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}
