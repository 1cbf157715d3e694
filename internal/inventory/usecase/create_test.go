package usecase_test

import (
	"context"
	"errors"
	"testing"

	"inventory-tracker/internal/inventory"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates Active Item With History And Success Notification", func(t *testing.T) {
		uc, _ := newTestUC()

		out, err := uc.Create(ctx, createInput("VAL-001", 10, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.Status != inventory.StatusActive {
			t.Errorf("new items must start active, got %s", out.Item.Status)
		}
		if out.Item.LastModified.IsZero() {
			t.Errorf("LastModified must be stamped on create")
		}

		successes := successesOf(out.Notifications)
		if len(successes) != 1 {
			t.Fatalf("expected 1 success notification, got %d", len(successes))
		}
		if successes[0].Message != "Asset created" {
			t.Errorf("unexpected success message: %s", successes[0].Message)
		}

		history, err := uc.History(ctx, inventory.HistoryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if history.Total != 1 || history.Entries[0].Type != inventory.HistoryCreated {
			t.Errorf("expected a single created entry, got %+v", history.Entries)
		}
		if history.Entries[0].ItemID != "VAL-001" || history.Entries[0].ItemName != "Item VAL-001" {
			t.Errorf("history must denormalize item id and name, got %+v", history.Entries[0])
		}
	})

	t.Run("Duplicate Id Ignoring Case", func(t *testing.T) {
		uc, _ := newTestUC()
		if _, err := uc.Create(ctx, createInput("VAL-001", 10, 3)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Create(ctx, createInput("val-001", 1, 1))
		if !errors.Is(err, inventory.ErrDuplicateID) {
			t.Errorf("expected ErrDuplicateID, got %v", err)
		}

		// The failed create must leave no trace.
		list, _ := uc.List(ctx, inventory.ListItemsInput{})
		if list.Total != 1 {
			t.Errorf("expected 1 item after rejected duplicate, got %d", list.Total)
		}
		history, _ := uc.History(ctx, inventory.HistoryInput{})
		if history.Total != 1 {
			t.Errorf("expected 1 history entry after rejected duplicate, got %d", history.Total)
		}
	})

	t.Run("Creating At Minimum Raises Alert", func(t *testing.T) {
		uc, _ := newTestUC()

		out, err := uc.Create(ctx, createInput("FIL-005", 5, 5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		alerts := alertsOf(out.Notifications)
		if len(alerts) != 1 {
			t.Fatalf("expected 1 alert at threshold, got %d", len(alerts))
		}
		if alerts[0].ItemID != "FIL-005" || alerts[0].CurrentStock != 5 || alerts[0].MinStock != 5 {
			t.Errorf("unexpected alert payload: %+v", alerts[0])
		}
	})

	t.Run("Validation Errors", func(t *testing.T) {
		uc, _ := newTestUC()

		cases := []struct {
			name  string
			input inventory.CreateItemInput
		}{
			{"Missing Id", createInput("  ", 1, 1)},
			{"Missing Name", inventory.CreateItemInput{ID: "A-1"}},
			{"Negative Stock", createInput("A-1", -1, 1)},
			{"Negative Min Stock", createInput("A-1", 1, -1)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Create(ctx, tc.input)
				if !errors.Is(err, inventory.ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
			})
		}
	})
}
