package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/smd-system/ai-service/internal/api/shared"
	"github.com/smd-system/ai-service/internal/domain"
	"github.com/smd-system/ai-service/internal/service"
	"github.com/smd-system/ai-service/internal/task"
)

// DiffHandler handles semantic diff HTTP requests
type DiffHandler struct {
	diff      *service.DiffService
	runner    *task.Runner
	validator *validator.Validate
}

// NewDiffHandler creates a new DiffHandler
func NewDiffHandler(diff *service.DiffService, runner *task.Runner) *DiffHandler {
	return &DiffHandler{
		diff:      diff,
		runner:    runner,
		validator: validator.New(),
	}
}

// Compare handles POST /api/semantic-diff/compare requests
func (h *DiffHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req SemanticDiffRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	id, err := task.FingerprintID(task.PrefixSemanticDiff, struct {
		Syllabus1 domain.Syllabus `json:"syllabus1"`
		Syllabus2 domain.Syllabus `json:"syllabus2"`
	}{req.Syllabus1, req.Syllabus2})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create task", err)
		return
	}

	oldVersion, newVersion := req.Syllabus1, req.Syllabus2
	t := task.New(id, task.TypeSemanticDiff, req.CallbackURL, func(ctx context.Context) (any, error) {
		return h.diff.Compare(ctx, oldVersion, newVersion)
	})

	if err := h.runner.Submit(r.Context(), t); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, SubmitResponse{
		TaskID:  id,
		Status:  "processing",
		Message: "Semantic diff comparison started",
	})
}
