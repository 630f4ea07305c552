package handlers

import (
	"net/http"
	"strconv"

	"github.com/advising-studio/engine/internal/api/envelope"
	"github.com/advising-studio/engine/internal/api/types"
	"github.com/advising-studio/engine/internal/services"
	appErr "github.com/advising-studio/engine/pkg/errors"
)

type StudentsHandler struct {
	students     services.StudentService
	interactions services.InteractionService
}

func NewStudentsHandler(students services.StudentService, interactions services.InteractionService) *StudentsHandler {
	return &StudentsHandler{students: students, interactions: interactions}
}

// List godoc
// @Summary  List students
// @Tags     students
// @Produce  json
// @Param    q          query  string  false  "name, number or email fragment"
// @Param    page       query  int     false  "page, from 1"
// @Param    page_size  query  int     false  "page size, at most 100"
// @Success  200  {array}   models.Student
// @Failure  400  {object}  envelope.ErrorBody
// @Failure  500  {object}  envelope.ErrorBody
// @Router   /api/students [get]
func (h *StudentsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		writeError(w, r, err)
		return
	}
	size, err := queryInt(r, "page_size")
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.students.ListStudents(r.Context(), &services.StudentFilters{
		Query:    r.URL.Query().Get("q"),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("X-Total-Count", strconv.FormatInt(res.Total, 10))
	w.Header().Set("X-Page", strconv.Itoa(res.Page))
	w.Header().Set("X-Page-Size", strconv.Itoa(res.PageSize))
	writeJSON(w, r, http.StatusOK, res.Items)
}

// Create godoc
// @Summary  Create a student
// @Tags     students
// @Accept   json
// @Produce  json
// @Param    body  body  types.CreateStudentRequest  true  "student"
// @Success  201  {object}  types.StudentResponse
// @Failure  400  {object}  envelope.ErrorBody
// @Failure  409  {object}  envelope.ErrorBody
// @Router   /api/students [post]
func (h *StudentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.CreateStudentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := types.Validate(req); err != nil {
		writeError(w, r, err)
		return
	}
	advisorID, err := parseOptionalID(req.AdvisorID)
	if err != nil {
		writeError(w, r, appErr.New(appErr.CodeInvalid, "advisor_id must be a valid UUID"))
		return
	}

	s, err := h.students.CreateStudent(r.Context(), &services.CreateStudentInput{
		StudentNumber: req.StudentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Program:       req.Program,
		Year:          req.Year,
		AdvisorID:     advisorID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, types.StudentResponse{Message: "Student created", Student: s})
}

func (h *StudentsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	s, err := h.students.GetStudent(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, s)
}

func (h *StudentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req types.UpdateStudentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := types.Validate(req); err != nil {
		writeError(w, r, err)
		return
	}
	advisorID, err := parseOptionalID(req.AdvisorID)
	if err != nil {
		writeError(w, r, appErr.New(appErr.CodeInvalid, "advisor_id must be a valid UUID"))
		return
	}

	s, err := h.students.UpdateStudent(r.Context(), id, &services.UpdateStudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Program:   req.Program,
		Year:      req.Year,
		AdvisorID: advisorID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, types.StudentResponse{Message: "Student updated", Student: s})
}

// Delete godoc
// @Summary  Delete a student
// @Tags     students
// @Produce  json
// @Param    id  path  string  true  "student id"
// @Success  200  {object}  envelope.Message
// @Failure  404  {object}  envelope.ErrorBody
// @Router   /api/students/{id} [delete]
func (h *StudentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.students.DeleteStudent(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, envelope.Message{Message: "Student deleted"})
}

// Interactions lists the interactions logged for one student, newest first.
func (h *StudentsHandler) Interactions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	items, err := h.interactions.ListInteractions(r.Context(), &services.InteractionFilters{
		Type:      r.URL.Query().Get("type"),
		StudentID: &id,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}
