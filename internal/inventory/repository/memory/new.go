// Package memory implements the inventory repository in process memory.
// State lives only for the lifetime of the process; there is no persistence
// layer behind it.
package memory

import (
	"strings"
	"sync"

	"inventory-tracker/internal/inventory"
	"inventory-tracker/internal/inventory/ledger"
	"inventory-tracker/pkg/log"
)

// implRepository holds the three owned collections: items, notifications and
// the history ledger. All access goes through the mutex so every method is a
// consistent snapshot or an atomic mutation.
type implRepository struct {
	mu            sync.RWMutex
	items         map[string]inventory.Item // keyed by canonical (lower-cased) id
	order         []string                  // canonical keys in insertion order
	notifications []inventory.Notification
	history       *ledger.Ledger
	l             log.Logger
}

// New creates an empty in-memory repository.
func New(l log.Logger) *implRepository {
	return &implRepository{
		items:   make(map[string]inventory.Item),
		history: ledger.New(),
		l:       l,
	}
}

// canonical is the case-insensitive identity key for item ids.
func canonical(id string) string {
	return strings.ToLower(id)
}
