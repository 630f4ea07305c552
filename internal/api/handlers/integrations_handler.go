package handlers

import (
	"net/http"

	"github.com/advising-studio/engine/internal/api/types"
	"github.com/advising-studio/engine/internal/services"
)

type IntegrationsHandler struct {
	svc services.IntegrationService
}

func NewIntegrationsHandler(svc services.IntegrationService) *IntegrationsHandler {
	return &IntegrationsHandler{svc: svc}
}

// List godoc
// @Summary  Integration health with resolved icons
// @Tags     integrations
// @Produce  json
// @Success  200  {array}   services.IntegrationStatus
// @Failure  500  {object}  envelope.ErrorBody
// @Router   /api/integrations [get]
func (h *IntegrationsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListIntegrations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

// Check godoc
// @Summary  Queue a health check for one integration
// @Tags     integrations
// @Produce  json
// @Param    id  path  string  true  "integration id"
// @Success  202  {object}  types.CheckQueuedResponse
// @Failure  404  {object}  envelope.ErrorBody
// @Failure  409  {object}  envelope.ErrorBody
// @Failure  503  {object}  envelope.ErrorBody
// @Router   /api/integrations/{id}/check [post]
func (h *IntegrationsHandler) Check(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	taskID, err := h.svc.RequestCheck(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusAccepted, types.CheckQueuedResponse{Message: "Check queued", TaskID: taskID})
}
