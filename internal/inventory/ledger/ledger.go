// Package ledger keeps the append-only audit log of inventory events.
package ledger

import (
	"sync"

	"inventory-tracker/internal/inventory"
)

// Ledger stores history entries most-recent-first. Entries are never mutated
// or removed once appended.
type Ledger struct {
	mu      sync.RWMutex
	entries []inventory.HistoryEntry
	lastID  int64
}

func New() *Ledger {
	return &Ledger{}
}

// Append assigns a unique ascending id to the entry and prepends it.
// Ids are time-based (nanoseconds) with a monotonic guard so that entries
// appended within the same instant still get distinct, increasing ids.
func (l *Ledger) Append(e inventory.HistoryEntry) inventory.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := e.Timestamp.UnixNano()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	e.ID = id

	l.entries = append([]inventory.HistoryEntry{e}, l.entries...)
	return e
}

// Entries returns a copy of the log, most recent first.
func (l *Ledger) Entries() []inventory.HistoryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]inventory.HistoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
