// Package view holds stateless display derivations over inventory snapshots.
// Nothing here mutates the source collection.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"inventory-tracker/internal/inventory"
)

// Status filter values.
const (
	StatusFilterActive   = "active"
	StatusFilterInactive = "inactive"
	StatusFilterAll      = "all"
)

// Sort keys for Sort.
const (
	SortByLastModified = "lastModified"
	SortByName         = "name"
	SortByStockDesc    = "stockDesc"
	SortByStockAsc     = "stockAsc"
)

// FilterOptions compose with AND semantics. An empty Status means all;
// an empty Search matches everything.
type FilterOptions struct {
	Status string
	Search string
}

// Filter returns the items matching opt, preserving input order.
func Filter(items []inventory.Item, opt FilterOptions) []inventory.Item {
	term := strings.ToLower(strings.TrimSpace(opt.Search))

	out := make([]inventory.Item, 0, len(items))
	for _, item := range items {
		switch opt.Status {
		case "", StatusFilterAll:
		default:
			if string(item.Status) != opt.Status {
				continue
			}
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.ID), term) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Sort returns a sorted copy of items. The default key is lastModified
// descending; name is ascending and locale-aware.
func Sort(items []inventory.Item, key string) []inventory.Item {
	out := make([]inventory.Item, len(items))
	copy(out, items)

	switch key {
	case SortByName:
		col := collate.New(language.Spanish)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByStockDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CurrentStock > out[j].CurrentStock
		})
	case SortByStockAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CurrentStock < out[j].CurrentStock
		})
	default: // SortByLastModified
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastModified.After(out[j].LastModified)
		})
	}
	return out
}
