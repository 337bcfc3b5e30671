package api

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/smd-system/ai-service/internal/api/shared"
	"github.com/smd-system/ai-service/internal/service"
	"github.com/smd-system/ai-service/internal/task"
)

// RelationHandler handles course relation extraction HTTP requests
type RelationHandler struct {
	relations *service.RelationService
	runner    *task.Runner
	validator *validator.Validate
}

// NewRelationHandler creates a new RelationHandler
func NewRelationHandler(relations *service.RelationService, runner *task.Runner) *RelationHandler {
	return &RelationHandler{
		relations: relations,
		runner:    runner,
		validator: validator.New(),
	}
}

// Extract handles POST /api/relation-extract/extract requests
func (h *RelationHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req RelationExtractRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	id, err := task.FingerprintID(task.PrefixRelationExtract, req.Syllabi)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create task", err)
		return
	}

	syllabi := req.Syllabi
	t := task.New(id, task.TypeRelationExtract, req.CallbackURL, func(ctx context.Context) (any, error) {
		return h.relations.Extract(ctx, syllabi)
	})

	if err := h.runner.Submit(r.Context(), t); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, SubmitResponse{
		TaskID:  id,
		Status:  "processing",
		Message: "Course relation extraction started",
	})
}
