package main

import (
	"context"
	"time"

	"inventory-tracker/internal/inventory"
	repo "inventory-tracker/internal/inventory/repository"
)

// seedDemoData loads a small starter inventory so the API is explorable out
// of the box. Seeding writes items directly, without history entries or
// success notifications; the caller refreshes alerts afterwards.
func seedDemoData(ctx context.Context, r repo.ItemRepository) error {
	now := time.Now()

	items := []repo.CreateItemOptions{
		{
			ID: "VAL-KOSO-001", Name: "Koso 2-inch control valve", Category: "Valves",
			CurrentStock: 10, MinStock: 3, ManagerEmail: "warehouse.manager@example.com",
			UnitOfMeasure: "units", Description: "2-inch Koso flow control valve, stainless steel body.",
			Status: inventory.StatusActive, LastModified: now,
		},
		{
			ID: "FIL-PARKER-005", Name: "Parker H2 filter", Category: "Filters",
			CurrentStock: 5, MinStock: 5, ManagerEmail: "warehouse.manager@example.com",
			UnitOfMeasure: "units", Description: "High-pressure filter for the Parker hydraulic system.",
			Status: inventory.StatusActive, LastModified: now,
		},
		{
			ID: "REP-SEAL-003", Name: "G-20 seal kit", Category: "Spare parts",
			CurrentStock: 25, MinStock: 10, ManagerEmail: "purchasing@example.com",
			UnitOfMeasure: "kits", Description: "Replacement seal kit for the G-20 pump.",
			Status: inventory.StatusActive, LastModified: now,
		},
		{
			ID: "MOTOR-WEG-010", Name: "WEG 5HP electric motor", Category: "Motors",
			CurrentStock: 2, MinStock: 2, ManagerEmail: "warehouse.manager@example.com",
			UnitOfMeasure: "units", Description: "WEG three-phase electric motor, 5 horsepower.",
			Status: inventory.StatusInactive, LastModified: now,
		},
	}

	for _, opt := range items {
		if _, err := r.CreateItem(ctx, opt); err != nil {
			return err
		}
	}
	return nil
}
