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

// AlignmentHandler handles CLO-PLO alignment HTTP requests
type AlignmentHandler struct {
	alignment *service.AlignmentService
	runner    *task.Runner
	validator *validator.Validate
}

// NewAlignmentHandler creates a new AlignmentHandler
func NewAlignmentHandler(alignment *service.AlignmentService, runner *task.Runner) *AlignmentHandler {
	return &AlignmentHandler{
		alignment: alignment,
		runner:    runner,
		validator: validator.New(),
	}
}

// Analyze handles POST /api/clo-plo-check/analyze requests
func (h *AlignmentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req CLOPLOCheckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// The callback URL is delivery metadata, not content, so it stays
	// out of the fingerprint.
	id, err := task.FingerprintID(task.PrefixCLOPLOCheck, struct {
		CLOs []domain.CLO `json:"clos"`
		PLOs []domain.PLO `json:"plos"`
	}{req.CLOs, req.PLOs})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create task", err)
		return
	}

	clos, plos := req.CLOs, req.PLOs
	t := task.New(id, task.TypeCLOPLOCheck, req.CallbackURL, func(ctx context.Context) (any, error) {
		return h.alignment.Analyze(ctx, clos, plos)
	})

	if err := h.runner.Submit(r.Context(), t); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, SubmitResponse{
		TaskID:  id,
		Status:  "processing",
		Message: "CLO-PLO alignment analysis started",
	})
}
