// Package alerting derives the set of active low-stock alerts from current
// inventory state. Recompute is pure: it never mutates its inputs and has no
// side effects, so the caller decides when the result becomes visible.
package alerting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"inventory-tracker/internal/inventory"
)

// Config carries the fixed values embedded in alert payloads.
type Config struct {
	// EscalationContact is the address named in alert details.
	EscalationContact string
}

// Recompute returns the notification set implied by items, given the
// previous set. Non-alert notifications pass through unchanged and keep
// their relative order. An existing alert survives (with its original
// identity) unless its item is gone, inactive, or replenished strictly
// above the minimum. A new alert is appended for every active item at or
// below its minimum that has no surviving alert.
func Recompute(prev []inventory.Notification, items []inventory.Item, cfg Config) []inventory.Notification {
	byID := make(map[string]inventory.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	next := make([]inventory.Notification, 0, len(prev))
	covered := make(map[string]bool)
	for _, n := range prev {
		if n.Type != inventory.NotificationAlert {
			next = append(next, n)
			continue
		}
		item, ok := byID[n.ItemID]
		if !ok || item.Status == inventory.StatusInactive || item.CurrentStock > item.MinStock {
			continue // resolved
		}
		next = append(next, n)
		covered[n.ItemID] = true
	}

	for _, item := range items {
		if item.Status != inventory.StatusActive {
			continue
		}
		if item.CurrentStock > item.MinStock || covered[item.ID] {
			continue
		}
		next = append(next, newAlert(item, cfg))
	}

	return next
}

func newAlert(item inventory.Item, cfg Config) inventory.Notification {
	return inventory.Notification{
		ID:           uuid.NewString(),
		Type:         inventory.NotificationAlert,
		ItemID:       item.ID,
		ItemName:     item.Name,
		CurrentStock: item.CurrentStock,
		MinStock:     item.MinStock,
		Message:      fmt.Sprintf("LOW STOCK ALERT - %s", item.Name),
		Details: fmt.Sprintf("Current stock: %d, minimum: %d. Contact %s.",
			item.CurrentStock, item.MinStock, cfg.EscalationContact),
		CreatedAt: time.Now(),
	}
}
