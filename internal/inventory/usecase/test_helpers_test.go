package usecase_test

import (
	"context"
	"time"

	"inventory-tracker/internal/inventory"
	"inventory-tracker/internal/inventory/repository"
	"inventory-tracker/internal/inventory/repository/memory"
	"inventory-tracker/internal/inventory/usecase"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

const testContact = "warehouse.manager@example.com"

// newTestUC wires a use case over a fresh in-memory repository.
func newTestUC() (inventory.UseCase, repository.Repository) {
	repo := memory.New(&mockLogger{})
	uc := usecase.New(repo, &mockLogger{}, usecase.Config{
		EscalationContact: testContact,
	})
	return uc, repo
}

func createInput(id string, stock, min int) inventory.CreateItemInput {
	return inventory.CreateItemInput{
		ID:            id,
		Name:          "Item " + id,
		Category:      "Spare parts",
		CurrentStock:  stock,
		MinStock:      min,
		ManagerEmail:  "manager@example.com",
		UnitOfMeasure: "units",
	}
}

func repositoryCreateOpt(id string, stock, min int, status inventory.Status) repository.CreateItemOptions {
	return repository.CreateItemOptions{
		ID: id, Name: "Item " + id, CurrentStock: stock, MinStock: min,
		Status: status, LastModified: time.Now(),
	}
}

func alertsOf(notifications []inventory.Notification) []inventory.Notification {
	var out []inventory.Notification
	for _, n := range notifications {
		if n.Type == inventory.NotificationAlert {
			out = append(out, n)
		}
	}
	return out
}

func successesOf(notifications []inventory.Notification) []inventory.Notification {
	var out []inventory.Notification
	for _, n := range notifications {
		if n.Type == inventory.NotificationSuccess {
			out = append(out, n)
		}
	}
	return out
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(cond func() bool, deadline time.Duration) bool {
	stop := time.Now().Add(deadline)
	for time.Now().Before(stop) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}
