package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/advising-studio/engine/internal/api/envelope"
	"github.com/advising-studio/engine/internal/api/middleware"
	"github.com/advising-studio/engine/internal/api/types"
	"github.com/advising-studio/engine/internal/catalog"
	"github.com/advising-studio/engine/internal/services"
	appErr "github.com/advising-studio/engine/pkg/errors"
)

type InteractionsHandler struct {
	svc services.InteractionService
}

func NewInteractionsHandler(svc services.InteractionService) *InteractionsHandler {
	return &InteractionsHandler{svc: svc}
}

// List godoc
// @Summary  List interactions
// @Tags     interactions
// @Produce  json
// @Param    type        query  string  false  "interaction type; all matches every type"
// @Param    student_id  query  string  false  "student id"
// @Param    limit       query  int     false  "maximum rows"
// @Success  200  {array}   models.Interaction
// @Failure  400  {object}  envelope.ErrorBody
// @Router   /api/interactions [get]
func (h *InteractionsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &services.InteractionFilters{Type: q.Get("type")}

	if raw := q.Get("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, r, appErr.New(appErr.CodeInvalid, "student_id must be a valid UUID"))
			return
		}
		filters.StudentID = &id
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}
	filters.Limit = limit

	items, err := h.svc.ListInteractions(r.Context(), filters)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

// Create godoc
// @Summary  Log an interaction
// @Tags     interactions
// @Accept   json
// @Produce  json
// @Param    body  body  types.CreateInteractionRequest  true  "interaction"
// @Success  201  {object}  types.InteractionResponse
// @Failure  400  {object}  envelope.ErrorBody
// @Failure  404  {object}  envelope.ErrorBody
// @Router   /api/interactions [post]
func (h *InteractionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateInteractionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := types.Validate(req); err != nil {
		writeError(w, r, err)
		return
	}

	studentID, _ := uuid.Parse(req.StudentID)
	staffID, err := parseOptionalID(req.StaffID)
	if err != nil {
		writeError(w, r, appErr.New(appErr.CodeInvalid, "staff_id must be a valid UUID"))
		return
	}
	if staffID == nil {
		staffID = callerStaffID(r)
	}

	var occurredAt *time.Time
	if req.OccurredAt != nil && *req.OccurredAt != "" {
		t, err := time.Parse(time.RFC3339, *req.OccurredAt)
		if err != nil {
			writeError(w, r, appErr.New(appErr.CodeInvalid, "occurred_at must be an RFC 3339 timestamp"))
			return
		}
		occurredAt = &t
	}

	it, err := h.svc.LogInteraction(r.Context(), &services.LogInteractionInput{
		StudentID:  studentID,
		StaffID:    staffID,
		Type:       strings.TrimSpace(req.Type),
		Summary:    req.Summary,
		OccurredAt: occurredAt,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, types.InteractionResponse{Message: "Interaction logged", Interaction: it})
}

func (h *InteractionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteInteraction(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope.Message{Message: "Interaction deleted"})
}

// InteractionTypes godoc
// @Summary  Interaction type filter options
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  catalog.Option
// @Router   /api/interaction-types [get]
func InteractionTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, catalog.InteractionTypes())
}

// callerStaffID attributes an interaction to the authenticated staff member
// when the body names nobody.
func callerStaffID(r *http.Request) *uuid.UUID {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		return nil
	}
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil
	}
	return &id
}
