package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inventory-tracker/config"
	_ "inventory-tracker/docs" // Swagger docs
	"inventory-tracker/internal/httpserver"
	"inventory-tracker/internal/inventory/repository/memory"
	"inventory-tracker/internal/inventory/usecase"
	"inventory-tracker/pkg/log"
)

// @title       Inventory Tracker API
// @description Single-warehouse inventory tracker: stock movements, assets, low-stock alerts, audit history and CSV export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Inventory Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Inventory domain
	repo := memory.New(logger)
	uc := usecase.New(repo, logger, usecase.Config{
		EscalationContact:      cfg.Inventory.EscalationContact,
		SuccessNotificationTTL: cfg.Inventory.SuccessNotificationTTL,
	})

	if cfg.Inventory.SeedDemoData {
		if err := seedDemoData(ctx, repo); err != nil {
			logger.Errorf(ctx, "Failed to seed demo data: %v", err)
			return
		}
		// Surface alerts for seeded items that are already at or below
		// their minimum.
		if err := uc.RefreshAlerts(ctx); err != nil {
			logger.Errorf(ctx, "Failed to compute initial alerts: %v", err)
			return
		}
		logger.Info(ctx, "Demo data seeded")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.Inventory.RateLimitPerMin,
		InventoryUC:     uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
