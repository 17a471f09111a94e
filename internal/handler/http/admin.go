package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	ListPendingUsers(w http.ResponseWriter, r *http.Request)
	ApproveUser(w http.ResponseWriter, r *http.Request)
	RejectUser(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	adminService user.AdminService
}

func NewAdminHandler(adminService user.AdminService) AdminHandler {
	return &AdminHandlerImpl{adminService: adminService}
}

// ListPendingUsers implements AdminHandler.
func (h *AdminHandlerImpl) ListPendingUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListPendingUsers(r.Context())
	if err != nil {
		slog.Error("ListPendingUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// ApproveUser implements AdminHandler. The body carries the profile fields
// for employee accounts; other roles are activated without one.
func (h *AdminHandlerImpl) ApproveUser(w http.ResponseWriter, r *http.Request) {
	var approveReq user.ApproveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&approveReq); err != nil {
		slog.Error("ApproveUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	approveReq.ID = chi.URLParam(r, "id")

	if err := h.adminService.ApproveUser(r.Context(), approveReq); err != nil {
		slog.Error("ApproveUser service error", "user_id", approveReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User approved", nil)
}

// RejectUser implements AdminHandler.
func (h *AdminHandlerImpl) RejectUser(w http.ResponseWriter, r *http.Request) {
	var rejectReq user.RejectUserRequest
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("RejectUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.ID = chi.URLParam(r, "id")

	if err := h.adminService.RejectUser(r.Context(), rejectReq); err != nil {
		slog.Error("RejectUser service error", "user_id", rejectReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User rejected", nil)
}
