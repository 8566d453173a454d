package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"student-manager/database"
	"student-manager/grid"
	"student-manager/logger"
	"student-manager/models"
	"student-manager/service"

	"github.com/gorilla/mux"
)

type StudentHandler struct {
	svc *service.StudentService
	log *logger.Logger
}

func NewStudentHandler(svc *service.StudentService, log *logger.Logger) *StudentHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &StudentHandler{svc: svc, log: log.Component("handlers")}
}

type GridResponse struct {
	Meta  Meta       `json:"meta"`
	Items []grid.Row `json:"items"`
}

type Meta struct {
	TotalItems     int   `json:"total_items"`
	TotalPages     int   `json:"total_pages"`
	CurrentPage    int   `json:"current_page"`
	PerPage        int   `json:"per_page"`
	RemainingCount int   `json:"remaining_count"`
	Selected       []int `json:"selected"`
}

// GetStudents reloads the grid and returns it. page and limit slice the
// snapshot; without limit every row is returned.
func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Load(r.Context()); err != nil {
		h.fail(w, "load students", err)
		return
	}

	rows := h.svc.Grid().Rows()
	total := len(rows)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = total
		page = 1
	}

	start, end := pageBounds(total, page, limit)
	totalPages := pageCount(total, limit)
	if totalPages == 0 {
		totalPages = 1
	}

	writeJSON(w, h.log, http.StatusOK, GridResponse{
		Meta: Meta{
			TotalItems:     total,
			TotalPages:     totalPages,
			CurrentPage:    page,
			PerPage:        limit,
			RemainingCount: total - end,
			Selected:       h.svc.Grid().Selected(),
		},
		Items: rows[start:end],
	})
}

// pageCount never adds to limit, so a huge limit cannot overflow.
func pageCount(total, limit int) int {
	if limit < 1 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

// pageBounds returns the slice of rows shown on page. Pages past the end are
// empty. page is at least 1; page and limit may be arbitrarily large.
func pageBounds(total, page, limit int) (int, int) {
	if page-1 >= pageCount(total, limit) {
		return total, total
	}
	start := (page - 1) * limit
	if limit > total-start {
		return start, total
	}
	return start, start + limit
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var in models.StudentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.log.Warning("❌ Error decoding JSON", map[string]interface{}{"error": err.Error()})
		writeError(w, h.log, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	res, err := h.svc.Insert(r.Context(), in)
	if err != nil {
		h.fail(w, "create student", err)
		return
	}
	writeJSON(w, h.log, http.StatusCreated, res)
}

func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.studentID(w, r)
	if !ok {
		return
	}

	var in models.StudentInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.log.Warning("❌ Error decoding request body", map[string]interface{}{"error": err.Error()})
		writeError(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		h.fail(w, "update student", err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, res)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.studentID(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, "delete student", err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, res)
}

// SearchStudents selects matching rows of the current grid. It does not
// reload first.
func (h *StudentHandler) SearchStudents(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Search(r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, "search students", err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, GridResponse{
		Meta: Meta{
			TotalItems:  len(rows),
			TotalPages:  1,
			CurrentPage: 1,
			PerPage:     len(rows),
			Selected:    h.svc.Grid().Selected(),
		},
		Items: rows,
	})
}

func (h *StudentHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, http.StatusOK, models.CourseNames())
}

func (h *StudentHandler) studentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.log.Warning("❌ Error converting id to int", map[string]interface{}{"error": err.Error()})
		writeError(w, h.log, http.StatusBadRequest, "Invalid student ID")
		return 0, false
	}
	return id, true
}

// fail maps an operation error to a status and a message for the operator.
func (h *StudentHandler) fail(w http.ResponseWriter, op string, err error) {
	status, message := errorStatus(err)
	fields := map[string]interface{}{"op": op, "status": status}
	if status >= http.StatusInternalServerError {
		h.log.Error("❌ "+op+" failed", err, fields)
	} else {
		fields["error"] = err.Error()
		h.log.Warning(op+" rejected", fields)
	}
	writeError(w, h.log, status, message)
}

func errorStatus(err error) (int, string) {
	var (
		connErr  *database.ConnectionError
		queryErr *database.QueryError
		writeErr *database.WriteError
	)
	switch {
	case errors.Is(err, models.ErrInvalidCourse):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, service.MsgNotFound
	case errors.As(err, &connErr):
		return http.StatusServiceUnavailable, "Database unavailable"
	case errors.As(err, &writeErr):
		return http.StatusInternalServerError, "Failed to write student to database"
	case errors.As(err, &queryErr):
		return http.StatusInternalServerError, "Failed to load students from database"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
