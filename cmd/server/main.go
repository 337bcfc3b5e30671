// Package main implements the entry point for the SMD AI service,
// which runs semantic syllabus analysis (CLO-PLO alignment, semantic
// diff, summarization, course relation extraction, and OCR) behind an
// asynchronous task API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/smd-system/ai-service/internal/config"
	"github.com/smd-system/ai-service/internal/platform/logger"
)

func main() {
	// A missing .env file is fine; variables may come from the real
	// environment.
	_ = godotenv.Load()

	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app.runner.Start()

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application components.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"store_driver", cfg.Store.Driver,
		"worker_count", cfg.Task.WorkerCount)

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to wire application: %w", err)
	}

	return app, nil
}
