package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/advising-studio/engine/internal/api/middleware"
	"github.com/advising-studio/engine/internal/api/types"
	"github.com/advising-studio/engine/internal/metrics"
	"github.com/advising-studio/engine/internal/repository"
	"github.com/advising-studio/engine/pkg/logger"
)

type AdminHandler struct {
	maintenance repository.MaintenanceRepository
}

func NewAdminHandler(maintenance repository.MaintenanceRepository) *AdminHandler {
	return &AdminHandler{maintenance: maintenance}
}

// Flush godoc
// @Summary      Delete all data
// @Description  Hard-deletes every student, interaction, integration and staff row.
// @Description  IRREVERSIBLE. Requires a token whose role claim is admin.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  types.FlushResponse
// @Failure      401  {object}  envelope.ErrorBody
// @Failure      403  {object}  envelope.ErrorBody
// @Failure      500  {object}  envelope.ErrorBody
// @Router       /api/admin/flush [delete]
func (h *AdminHandler) Flush(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFrom(r.Context())
	logger.L().Warn("data flush requested",
		zap.String("principal", p.ID),
		zap.String("request_id", middleware.GetRequestID(r.Context())),
	)

	report, err := h.maintenance.Flush(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.DataFlushes.Inc()
	logger.L().Warn("data flushed", zap.String("principal", p.ID), zap.Any("deleted", report))
	writeJSON(w, r, http.StatusOK, types.FlushResponse{Message: "All data flushed", Deleted: report})
}
