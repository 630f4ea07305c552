package handlers

import (
	"net/http"

	"github.com/advising-studio/engine/internal/models"
	"github.com/advising-studio/engine/internal/repository"
)

type StaffHandler struct {
	repo repository.StaffRepository
}

func NewStaffHandler(repo repository.StaffRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.Staff{}
	}
	writeJSON(w, r, http.StatusOK, items)
}
