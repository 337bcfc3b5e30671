package api

import (
	"net/http"

	"github.com/smd-system/ai-service/internal/api/shared"
)

// RootResponse describes the service and which analysis families are
// currently usable given the configured backends.
type RootResponse struct {
	Message       string            `json:"message"`
	AvailableAPIs []string          `json:"available_apis"`
	MissingAPIs   map[string]string `json:"missing_apis,omitempty"`
}

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// StatusHandler serves the root capability listing and the health check
type StatusHandler struct {
	available []string
	missing   map[string]string
}

// NewStatusHandler creates a StatusHandler. available lists the mounted
// API prefixes; missing maps unavailable prefixes to the reason.
func NewStatusHandler(available []string, missing map[string]string) *StatusHandler {
	return &StatusHandler{available: available, missing: missing}
}

// Root handles GET / requests
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{
		Message:       "SMD AI Service is running",
		AvailableAPIs: h.available,
		MissingAPIs:   h.missing,
	})
}

// Health handles GET /health requests
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "smd-ai-service",
	})
}
