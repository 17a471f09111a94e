package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler. The body is decoded as a loose mapping
// so any of the historical payload shapes are accepted; the normalizer sorts
// them out.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		slog.Error("Mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	subjectEmail := middleware.SubjectEmail(r.Context())

	rec, err := h.attendanceService.Mark(r.Context(), subjectEmail, raw)
	if err != nil {
		slog.Error("Mark service error", "email", subjectEmail, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked", rec)
}

// List implements AttendanceHandler. Reviewer view over all subjects.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{}
	if v := r.URL.Query().Get("email"); v != "" {
		filter.Email = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	records, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListMine implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	subjectEmail := middleware.SubjectEmail(r.Context())

	records, err := h.attendanceService.ListMine(r.Context(), subjectEmail)
	if err != nil {
		slog.Error("ListMine attendance service error", "email", subjectEmail, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
