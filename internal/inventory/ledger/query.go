package ledger

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"inventory-tracker/internal/inventory"
)

// Type filter values beyond the specific history types.
const (
	TypeAll       = "all"
	TypeMovements = "movements"
)

// Sort keys for Query.
const (
	SortByTimestamp = "timestamp"
	SortByItemName  = "itemName"
	SortByItemID    = "itemId"
)

// QueryOptions filters compose with AND semantics. Zero From/To means the
// bound is absent; set bounds are widened to whole UTC days (inclusive).
type QueryOptions struct {
	Type   string
	From   time.Time
	To     time.Time
	Search string
	SortBy string
}

// Query filters and sorts a snapshot of entries without mutating it.
// The default sort is timestamp descending (newest first); name and id sorts
// are ascending and locale-aware.
func Query(entries []inventory.HistoryEntry, opt QueryOptions) []inventory.HistoryEntry {
	var from, to time.Time
	if !opt.From.IsZero() {
		from = startOfDayUTC(opt.From)
	}
	if !opt.To.IsZero() {
		to = endOfDayUTC(opt.To)
	}
	term := strings.ToLower(strings.TrimSpace(opt.Search))

	out := make([]inventory.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if !matchesType(e.Type, opt.Type) {
			continue
		}
		if !from.IsZero() && e.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && e.Timestamp.After(to) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.ItemName), term) &&
			!strings.Contains(strings.ToLower(e.ItemID), term) {
			continue
		}
		out = append(out, e)
	}

	switch opt.SortBy {
	case SortByItemName:
		col := collate.New(language.Spanish)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].ItemName, out[j].ItemName) < 0
		})
	case SortByItemID:
		col := collate.New(language.Spanish)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].ItemID, out[j].ItemID) < 0
		})
	default: // SortByTimestamp
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Timestamp.After(out[j].Timestamp)
		})
	}

	return out
}

func matchesType(t inventory.HistoryType, filter string) bool {
	switch filter {
	case "", TypeAll:
		return true
	case TypeMovements:
		return t == inventory.HistoryStockIn || t == inventory.HistoryStockOut
	default:
		return string(t) == filter
	}
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}
