package view

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"inventory-tracker/internal/inventory"
)

// CSVHeader is the fixed export column order. It is part of the export
// contract and must not be reordered.
var CSVHeader = []string{
	"id", "name", "category", "current_stock", "min_stock",
	"unit_of_measure", "description", "manager_email", "last_modified", "status",
}

// CSVRows projects items into export rows in CSVHeader order. Returns
// inventory.ErrEmptyExport when there is nothing to export; whether that
// warrants alerting the user is the caller's call.
func CSVRows(items []inventory.Item) ([][]string, error) {
	if len(items) == 0 {
		return nil, inventory.ErrEmptyExport
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			item.Name,
			item.Category,
			strconv.Itoa(item.CurrentStock),
			strconv.Itoa(item.MinStock),
			item.UnitOfMeasure,
			item.Description,
			item.ManagerEmail,
			item.LastModified.UTC().Format(time.RFC3339),
			string(item.Status),
		})
	}
	return rows, nil
}

// WriteCSV writes the header plus one row per item to w with standard CSV
// quoting (fields containing the delimiter or quotes are quoted, quotes
// doubled).
func WriteCSV(w io.Writer, items []inventory.Item) error {
	rows, err := CSVRows(items)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
