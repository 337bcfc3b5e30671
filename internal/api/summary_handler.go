package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/smd-system/ai-service/internal/api/shared"
	"github.com/smd-system/ai-service/internal/domain"
	"github.com/smd-system/ai-service/internal/service"
	"github.com/smd-system/ai-service/internal/summarizer"
	"github.com/smd-system/ai-service/internal/task"
)

// SummaryHandler handles summary generation HTTP requests
type SummaryHandler struct {
	summary   *service.SummaryService
	runner    *task.Runner
	validator *validator.Validate
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summary *service.SummaryService, runner *task.Runner) *SummaryHandler {
	return &SummaryHandler{
		summary:   summary,
		runner:    runner,
		validator: validator.New(),
	}
}

// Generate handles POST /api/summary/generate requests
func (h *SummaryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	bounds := summarizer.DefaultBounds()
	if req.MaxLength != nil {
		bounds.MaxLength = *req.MaxLength
	}
	if req.MinLength != nil {
		bounds.MinLength = *req.MinLength
	}

	// Different bounds produce different summaries, so they are part
	// of the task identity.
	id, err := task.FingerprintID(task.PrefixSummary, struct {
		Syllabus  domain.Syllabus `json:"syllabus"`
		MaxLength int             `json:"max_length"`
		MinLength int             `json:"min_length"`
	}{req.Syllabus, bounds.MaxLength, bounds.MinLength})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create task", err)
		return
	}

	syllabus := req.Syllabus
	t := task.New(id, task.TypeSummary, req.CallbackURL, func(ctx context.Context) (any, error) {
		return h.summary.Generate(ctx, syllabus, bounds)
	})

	if err := h.runner.Submit(r.Context(), t); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, SubmitResponse{
		TaskID:  id,
		Status:  "processing",
		Message: "Summary generation started",
	})
}
