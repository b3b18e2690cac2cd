package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/project-actions-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-actions-service/internal/platform/logging"
	"github.com/jsamuelsen11/project-actions-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is the check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered checker
// passes, 503 with the failing checks otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := dto.HealthResponse{Status: statusReady, Checks: make(map[string]string)}

	for name, err := range h.registry.CheckAll(ctx) {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
			slog.String("checker", name),
			slog.Any("error", err),
		)
	}

	code := http.StatusOK
	if resp.Status == statusNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
