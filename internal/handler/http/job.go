package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/job"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &JobHandlerImpl{jobService: jobService}
}

// Create implements JobHandler.
func (h *JobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq job.CreatePostingRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create job posting decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	postedBy := middleware.UserID(r.Context())

	created, err := h.jobService.Create(r.Context(), createReq, postedBy)
	if err != nil {
		slog.Error("Create job posting service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created", created)
}

// List implements JobHandler.
func (h *JobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	postings, err := h.jobService.List(r.Context())
	if err != nil {
		slog.Error("List job postings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, postings)
}

// Get implements JobHandler.
func (h *JobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	posting, err := h.jobService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Get job posting service error", "job_id", id, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, posting)
}

// Apply implements JobHandler.
func (h *JobHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var applyReq job.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&applyReq); err != nil {
		slog.Error("Apply job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	applyReq.JobID = chi.URLParam(r, "id")

	subjectEmail := middleware.SubjectEmail(r.Context())

	created, err := h.jobService.Apply(r.Context(), subjectEmail, applyReq)
	if err != nil {
		slog.Error("Apply job service error", "job_id", applyReq.JobID, "email", subjectEmail, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted", created)
}

// ListApplications implements JobHandler. Reviewer view over all applications.
func (h *JobHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.jobService.ListApplications(r.Context())
	if err != nil {
		slog.Error("List job applications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, applications)
}
