package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/smd-system/ai-service/internal/config"
	"github.com/smd-system/ai-service/internal/embedding"
	"github.com/smd-system/ai-service/internal/events"
	"github.com/smd-system/ai-service/internal/ocr"
	"github.com/smd-system/ai-service/internal/service"
	"github.com/smd-system/ai-service/internal/store"
	"github.com/smd-system/ai-service/internal/summarizer"
	"github.com/smd-system/ai-service/internal/task"
	"github.com/smd-system/ai-service/internal/webhook"
)

// application holds all shared dependencies, wired once at startup.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore   task.TaskStore
	storeCloser io.Closer // non-nil when the store needs closing
	runner      *task.Runner
	emitter     events.EventEmitter

	alignment *service.AlignmentService
	diff      *service.DiffService
	summary   *service.SummaryService
	relations *service.RelationService
	ocr       *service.OCRService

	availableAPIs []string
	missingAPIs   map[string]string
}

// newApplication wires stores, analysis services, the task runner, and
// webhook delivery from the configuration. Optional backends degrade
// rather than fail: a missing embedding endpoint falls back to TF-IDF,
// a missing Gemini key falls back to extractive summaries, and a
// missing OCR engine marks the OCR family unavailable.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		missingAPIs: make(map[string]string),
	}

	switch cfg.Store.Driver {
	case "sqlite":
		s, err := store.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		app.taskStore = s
		app.storeCloser = s
		logger.Info("using sqlite task store", "path", cfg.Store.SQLitePath)
	default:
		app.taskStore = store.NewMemory()
		logger.Info("using in-memory task store")
	}

	newEmbedder, err := buildEmbedderFactory(cfg.Embedding, logger)
	if err != nil {
		return nil, err
	}

	app.alignment = service.NewAlignmentService(newEmbedder, logger)
	app.diff = service.NewDiffService(newEmbedder, logger)
	app.relations = service.NewRelationService(newEmbedder, logger)

	var model summarizer.Summarizer
	if cfg.Summarizer.GeminiAPIKey != "" {
		gem, err := summarizer.NewGemini(ctx, logger, summarizer.GeminiConfig{
			APIKey:    cfg.Summarizer.GeminiAPIKey,
			ModelName: cfg.Summarizer.ModelName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini summarizer: %w", err)
		}
		model = gem
		logger.Info("using Gemini summarization model", "model", cfg.Summarizer.ModelName)
	} else {
		logger.Info("no Gemini API key configured, summaries use the extractive fallback")
	}
	app.summary = service.NewSummaryService(
		model,
		summarizer.NewExtractive(),
		summarizer.NewFrequencyTagger(),
		logger,
	)

	var engine ocr.Engine
	if cfg.OCR.BaseURL != "" {
		engine, err = ocr.NewRemote(ocr.RemoteConfig{
			BaseURL:  cfg.OCR.BaseURL,
			Language: cfg.OCR.Language,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create OCR engine client: %w", err)
		}
		logger.Info("using remote OCR engine", "language", cfg.OCR.Language)
	} else {
		logger.Warn("no OCR engine configured, OCR endpoints are unavailable")
	}
	app.ocr = service.NewOCRService(engine, ocr.CleanOptions{GlyphFix: cfg.OCR.GlyphFix}, logger)

	app.availableAPIs = []string{
		"/api/clo-plo-check",
		"/api/semantic-diff",
		"/api/summary",
		"/api/relation-extract",
	}
	if app.ocr.Available() {
		app.availableAPIs = append(app.availableAPIs, "/api/ocr")
	} else {
		app.missingAPIs["/api/ocr"] = "OCR engine is not configured"
	}

	app.runner = task.NewRunner(app.taskStore, task.RunnerConfig{
		WorkerCount: cfg.Task.WorkerCount,
		QueueSize:   cfg.Task.QueueSize,
	}, logger)

	emitter := events.NewInMemoryEventEmitter(logger)
	dispatcher := webhook.NewDispatcher(time.Duration(cfg.Callback.TimeoutSeconds)*time.Second, logger)
	emitter.RegisterHandler(dispatcher)
	app.emitter = emitter

	app.runner.SetCompletionFunc(func(ctx context.Context, t task.Task, record task.Record) {
		if t.CallbackURL() == "" {
			return
		}
		event := events.NewTaskCompletedEvent(t.ID(), t.CallbackURL(), record)
		if err := emitter.EmitEvent(ctx, event); err != nil {
			logger.Error("failed to emit task completed event",
				"error", err,
				"task_id", t.ID())
		}
	})

	return app, nil
}

// buildEmbedderFactory returns a factory for the configured embedding
// backend. The remote client is stateless and shared; the TF-IDF
// fallback is stateful per corpus, so the factory hands out a fresh
// instance per task.
func buildEmbedderFactory(cfg config.EmbeddingConfig, logger *slog.Logger) (service.EmbedderFactory, error) {
	if cfg.BaseURL == "" {
		logger.Info("no embedding endpoint configured, using TF-IDF fallback")
		return func() embedding.Embedder { return embedding.NewTFIDF() }, nil
	}

	remote, err := embedding.NewRemote(embedding.RemoteConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	logger.Info("using remote embedding model", "model", cfg.Model)
	return func() embedding.Embedder { return remote }, nil
}

// cleanup releases application resources after the HTTP server stops.
func (app *application) cleanup() {
	app.runner.Stop()
	if app.storeCloser != nil {
		if err := app.storeCloser.Close(); err != nil {
			app.logger.Error("failed to close task store", "error", err)
		}
	}
}
