package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/smd-system/ai-service/internal/api/shared"
	"github.com/smd-system/ai-service/internal/task"
)

// ResultHandler serves task records for every analysis family. Each
// family mounts it under its own result route; the stored record
// already carries the family type.
type ResultHandler struct {
	store task.TaskStore
}

// NewResultHandler creates a new ResultHandler
func NewResultHandler(store task.TaskStore) *ResultHandler {
	return &ResultHandler{store: store}
}

// GetResult handles GET .../result/{task_id} requests
func (h *ResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")
	if taskID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing task_id")
		return
	}

	record, err := h.store.Get(r.Context(), taskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, record)
}
