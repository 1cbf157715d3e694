package ledger_test

import (
	"testing"
	"time"

	"inventory-tracker/internal/inventory"
	"inventory-tracker/internal/inventory/ledger"
)

func TestAppend(t *testing.T) {
	t.Run("Assigns Unique Ascending Ids", func(t *testing.T) {
		l := ledger.New()
		now := time.Now()

		// Same timestamp on purpose: ids must still come out distinct and
		// increasing.
		first := l.Append(inventory.HistoryEntry{Type: inventory.HistoryCreated, ItemID: "A-1", Timestamp: now})
		second := l.Append(inventory.HistoryEntry{Type: inventory.HistoryStockIn, ItemID: "A-1", Timestamp: now})
		third := l.Append(inventory.HistoryEntry{Type: inventory.HistoryStockOut, ItemID: "A-1", Timestamp: now})

		if first.ID != now.UnixNano() {
			t.Errorf("first id should be the timestamp in nanoseconds, got %d", first.ID)
		}
		if second.ID <= first.ID || third.ID <= second.ID {
			t.Errorf("ids must strictly increase: %d, %d, %d", first.ID, second.ID, third.ID)
		}
	})

	t.Run("Most Recent First", func(t *testing.T) {
		l := ledger.New()
		l.Append(inventory.HistoryEntry{ItemID: "old", Timestamp: time.Now()})
		l.Append(inventory.HistoryEntry{ItemID: "new", Timestamp: time.Now()})

		entries := l.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].ItemID != "new" || entries[1].ItemID != "old" {
			t.Errorf("entries must be most-recent-first: %+v", entries)
		}
	})

	t.Run("Length Only Grows", func(t *testing.T) {
		l := ledger.New()
		for i := 0; i < 5; i++ {
			before := l.Len()
			l.Append(inventory.HistoryEntry{ItemID: "A-1", Timestamp: time.Now()})
			if l.Len() != before+1 {
				t.Fatalf("append %d: expected len %d, got %d", i, before+1, l.Len())
			}
		}
	})

	t.Run("Entries Returns A Copy", func(t *testing.T) {
		l := ledger.New()
		l.Append(inventory.HistoryEntry{ItemID: "A-1", Timestamp: time.Now()})

		snapshot := l.Entries()
		snapshot[0].ItemID = "tampered"

		if l.Entries()[0].ItemID != "A-1" {
			t.Errorf("mutating the snapshot must not touch the ledger")
		}
	})
}
