package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/smd-system/ai-service/internal/api"
	apiMiddleware "github.com/smd-system/ai-service/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	alignmentHandler := api.NewAlignmentHandler(app.alignment, app.runner)
	diffHandler := api.NewDiffHandler(app.diff, app.runner)
	summaryHandler := api.NewSummaryHandler(app.summary, app.runner)
	relationHandler := api.NewRelationHandler(app.relations, app.runner)
	ocrHandler := api.NewOCRHandler(app.ocr, app.runner)
	resultHandler := api.NewResultHandler(app.taskStore)
	statusHandler := api.NewStatusHandler(app.availableAPIs, app.missingAPIs)

	// Register routes. Every family pairs a submit endpoint with a
	// result endpoint under its own prefix.
	r.Route("/api", func(r chi.Router) {
		r.Route("/clo-plo-check", func(r chi.Router) {
			r.Post("/analyze", alignmentHandler.Analyze)
			r.Get("/result/{task_id}", resultHandler.GetResult)
		})

		r.Route("/semantic-diff", func(r chi.Router) {
			r.Post("/compare", diffHandler.Compare)
			r.Get("/result/{task_id}", resultHandler.GetResult)
		})

		r.Route("/summary", func(r chi.Router) {
			r.Post("/generate", summaryHandler.Generate)
			r.Get("/result/{task_id}", resultHandler.GetResult)
		})

		r.Route("/relation-extract", func(r chi.Router) {
			r.Post("/extract", relationHandler.Extract)
			r.Get("/result/{task_id}", resultHandler.GetResult)
		})

		r.Route("/ocr", func(r chi.Router) {
			r.Post("/extract-text", ocrHandler.ExtractText)
			r.Post("/upload-file", ocrHandler.UploadFile)
			r.Get("/result/{task_id}", resultHandler.GetResult)
		})
	})

	// Service description and health check endpoints
	r.Get("/", statusHandler.Root)
	r.Get("/health", statusHandler.Health)

	return r
}
