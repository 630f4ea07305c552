package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/advising-studio/engine/internal/api/envelope"
	"github.com/advising-studio/engine/internal/api/types"
	"github.com/advising-studio/engine/pkg/logger"
)

// Pinger reports whether a dependency is reachable.
type Pinger func(ctx context.Context) error

// Check is a named readiness dependency.
type Check struct {
	Name string
	Ping Pinger
}

type HealthHandler struct {
	checks  []Check
	timeout time.Duration
}

func NewHealthHandler(checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, types.HealthResponse{Status: "ok"})
}

// Readiness pings every dependency in order and fails on the first that is down.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	for _, c := range h.checks {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		err := c.Ping(ctx)
		cancel()
		if err != nil {
			logger.L().Warn("readiness check failed", zap.String("check", c.Name), zap.Error(err))
			envelope.Failure(w, r, http.StatusServiceUnavailable, c.Name+" unavailable")
			return
		}
	}
	writeJSON(w, r, http.StatusOK, types.HealthResponse{Status: "ready"})
}
