package handlers

import (
	"log/slog"
	"net/http"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/dto"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/platform/logging"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional map[string]bool
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
// Checkers named in optional degrade readiness instead of failing it; the
// validation webhook is one, since notification failures never fail a write.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	h := &HealthHandler{registry: registry, optional: make(map[string]bool, len(optional))}
	for _, name := range optional {
		h.optional[name] = true
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Returns 200 with status "ready" when
// every check passes, 200 "degraded" when only optional checks fail, and 503
// "not_ready" when a required check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	status := statusReady
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}
		checks[name] = err.Error()
		logging.FromContext(r.Context()).WarnContext(r.Context(), "health check failed",
			slog.String("component", name),
			slog.Bool("optional", h.optional[name]),
			slog.Any("error", err),
		)
		switch {
		case !h.optional[name]:
			status = statusNotReady
		case status == statusReady:
			status = statusDegraded
		}
	}

	code := http.StatusOK
	if status == statusNotReady {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, dto.HealthResponse{Status: status, Checks: checks})
}
