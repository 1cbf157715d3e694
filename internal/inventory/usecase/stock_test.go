package usecase_test

import (
	"context"
	"errors"
	"testing"

	"inventory-tracker/internal/inventory"
)

func TestAdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Stock Out Crossing Threshold Raises Alert", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, createInput("A-1", 6, 5))

		out, err := uc.AdjustStock(ctx, inventory.AdjustStockInput{
			ItemID: "A-1", Quantity: 1, Direction: inventory.DirectionOut,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.CurrentStock != 5 {
			t.Errorf("expected stock 5, got %d", out.Item.CurrentStock)
		}
		if out.Entry.Type != inventory.HistoryStockOut || out.Entry.QuantityChange != 1 {
			t.Errorf("unexpected history entry: %+v", out.Entry)
		}
		if len(alertsOf(out.Notifications)) != 1 {
			t.Errorf("expected alert at threshold, got %+v", out.Notifications)
		}
	})

	t.Run("Stock In Above Threshold Resolves Alert", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, createInput("A-1", 5, 5)) // seeds an alert

		out, err := uc.AdjustStock(ctx, inventory.AdjustStockInput{
			ItemID: "A-1", Quantity: 2, Direction: inventory.DirectionIn,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.CurrentStock != 7 {
			t.Errorf("expected stock 7, got %d", out.Item.CurrentStock)
		}
		if out.Entry.Type != inventory.HistoryStockIn || out.Entry.QuantityChange != 2 {
			t.Errorf("unexpected history entry: %+v", out.Entry)
		}
		if len(alertsOf(out.Notifications)) != 0 {
			t.Errorf("expected alert resolved, got %+v", out.Notifications)
		}
	})

	t.Run("Stock In Up To Threshold Keeps Alert Identity", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, createInput("A-1", 3, 5))

		before, _ := uc.Notifications(ctx)
		alertID := alertsOf(before)[0].ID

		out, err := uc.AdjustStock(ctx, inventory.AdjustStockInput{
			ItemID: "A-1", Quantity: 2, Direction: inventory.DirectionIn,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		alerts := alertsOf(out.Notifications)
		if len(alerts) != 1 || alerts[0].ID != alertID {
			t.Errorf("alert must survive with its identity while still at threshold: %+v", alerts)
		}
	})

	t.Run("Item Id Matched Ignoring Case", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, createInput("A-1", 10, 2))

		out, err := uc.AdjustStock(ctx, inventory.AdjustStockInput{
			ItemID: "a-1", Quantity: 3, Direction: inventory.DirectionIn,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.ID != "A-1" || out.Item.CurrentStock != 13 {
			t.Errorf("unexpected item: %+v", out.Item)
		}
	})

	t.Run("Unknown Item", func(t *testing.T) {
		uc, _ := newTestUC()
		_, err := uc.AdjustStock(ctx, inventory.AdjustStockInput{
			ItemID: "ghost", Quantity: 1, Direction: inventory.DirectionIn,
		})
		if !errors.Is(err, inventory.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Inactive Item Rejected", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, createInput("A-1", 10, 2))
		uc.ToggleStatus(ctx, "A-1")

		_, err := uc.AdjustStock(ctx, inventory.AdjustStockInput{
			ItemID: "A-1", Quantity: 1, Direction: inventory.DirectionIn,
		})
		if !errors.Is(err, inventory.ErrInactiveItem) {
			t.Errorf("expected ErrInactiveItem, got %v", err)
		}
	})

	t.Run("Over-Withdrawal Leaves State Unchanged", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, createInput("A-1", 3, 1))

		historyBefore, _ := uc.History(ctx, inventory.HistoryInput{})

		_, err := uc.AdjustStock(ctx, inventory.AdjustStockInput{
			ItemID: "A-1", Quantity: 4, Direction: inventory.DirectionOut,
		})
		if !errors.Is(err, inventory.ErrNegativeStock) {
			t.Fatalf("expected ErrNegativeStock, got %v", err)
		}

		detail, _ := uc.Detail(ctx, "A-1")
		if detail.Item.CurrentStock != 3 {
			t.Errorf("stock must be unchanged after rejection, got %d", detail.Item.CurrentStock)
		}
		historyAfter, _ := uc.History(ctx, inventory.HistoryInput{})
		if historyAfter.Total != historyBefore.Total {
			t.Errorf("no history entry may be appended for a rejected movement")
		}
	})

	t.Run("Withdrawal To Exactly Zero Is Allowed", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, createInput("A-1", 3, 1))

		out, err := uc.AdjustStock(ctx, inventory.AdjustStockInput{
			ItemID: "A-1", Quantity: 3, Direction: inventory.DirectionOut,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.CurrentStock != 0 {
			t.Errorf("expected stock 0, got %d", out.Item.CurrentStock)
		}
	})

	t.Run("Validation Errors", func(t *testing.T) {
		uc, _ := newTestUC()
		uc.Create(ctx, createInput("A-1", 3, 1))

		cases := []struct {
			name  string
			input inventory.AdjustStockInput
		}{
			{"Zero Quantity", inventory.AdjustStockInput{ItemID: "A-1", Quantity: 0, Direction: inventory.DirectionIn}},
			{"Negative Quantity", inventory.AdjustStockInput{ItemID: "A-1", Quantity: -2, Direction: inventory.DirectionIn}},
			{"Bad Direction", inventory.AdjustStockInput{ItemID: "A-1", Quantity: 1, Direction: "sideways"}},
			{"Missing Item Id", inventory.AdjustStockInput{Quantity: 1, Direction: inventory.DirectionIn}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.AdjustStock(ctx, tc.input)
				if !errors.Is(err, inventory.ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
			})
		}
	})
}
