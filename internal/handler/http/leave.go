package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq leave.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	subjectEmail := middleware.SubjectEmail(r.Context())

	created, err := h.leaveService.Submit(r.Context(), subjectEmail, submitReq)
	if err != nil {
		slog.Error("Submit leave service error", "email", subjectEmail, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", created)
}

// List implements LeaveHandler. Reviewer view over all requests.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leaveService.List(r.Context())
	if err != nil {
		slog.Error("List leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListMine implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	subjectEmail := middleware.SubjectEmail(r.Context())

	requests, err := h.leaveService.ListMine(r.Context(), subjectEmail)
	if err != nil {
		slog.Error("ListMine leave service error", "email", subjectEmail, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	decidedBy := middleware.UserID(r.Context())

	decided, err := h.leaveService.Approve(r.Context(), id, decidedBy)
	if err != nil {
		slog.Error("Approve leave service error", "leave_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", decided)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var rejectReq leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.ID = chi.URLParam(r, "id")
	decidedBy := middleware.UserID(r.Context())

	decided, err := h.leaveService.Reject(r.Context(), rejectReq, decidedBy)
	if err != nil {
		slog.Error("Reject leave service error", "leave_id", rejectReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", decided)
}
