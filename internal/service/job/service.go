package job

import (
	"context"
	"fmt"
	"strings"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/job"
	"github.com/hrms-labs/hrms-backend-go/internal/service/reconcile"
)

type JobServiceImpl struct {
	job.JobRepository
}

func NewJobService(jobRepository job.JobRepository) job.JobService {
	return &JobServiceImpl{
		JobRepository: jobRepository,
	}
}

// Create implements job.JobService.
func (s *JobServiceImpl) Create(ctx context.Context, req job.CreatePostingRequest, postedBy string) (job.PostingResponse, error) {
	if err := req.Validate(); err != nil {
		return job.PostingResponse{}, err
	}

	created, err := s.JobRepository.CreatePosting(ctx, job.Posting{
		Title:       strings.TrimSpace(req.Title),
		Department:  strings.TrimSpace(req.Department),
		Location:    req.Location,
		Description: strings.TrimSpace(req.Description),
		Openings:    req.Openings,
		PostedBy:    postedBy,
	})
	if err != nil {
		return job.PostingResponse{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	return toPostingResponse(created), nil
}

// List implements job.JobService.
func (s *JobServiceImpl) List(ctx context.Context) ([]job.PostingResponse, error) {
	postings, err := s.JobRepository.ListPostings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}

	responses := make([]job.PostingResponse, 0, len(postings))
	for _, posting := range postings {
		responses = append(responses, toPostingResponse(posting))
	}
	return responses, nil
}

// Get implements job.JobService.
func (s *JobServiceImpl) Get(ctx context.Context, id string) (job.PostingResponse, error) {
	posting, err := s.JobRepository.GetPostingByID(ctx, id)
	if err != nil {
		return job.PostingResponse{}, err
	}

	return toPostingResponse(posting), nil
}

// Apply implements job.JobService. The applicant identity always comes from
// the session; only open postings accept applications.
func (s *JobServiceImpl) Apply(ctx context.Context, subjectEmail string, req job.ApplyRequest) (job.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return job.ApplicationResponse{}, err
	}

	posting, err := s.JobRepository.GetPostingByID(ctx, req.JobID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if posting.Status != job.PostingOpen {
		return job.ApplicationResponse{}, job.ErrJobClosed
	}

	created, err := s.JobRepository.CreateApplication(ctx, job.Application{
		JobID:    posting.ID,
		Email:    reconcile.NormalizeEmail(subjectEmail),
		FullName: strings.TrimSpace(req.FullName),
		Phone:    req.Phone,
		Message:  strings.TrimSpace(req.Message),
	})
	if err != nil {
		return job.ApplicationResponse{}, err
	}

	return toApplicationResponse(created), nil
}

// ListApplications implements job.JobService.
func (s *JobServiceImpl) ListApplications(ctx context.Context) ([]job.ApplicationResponse, error) {
	applications, err := s.JobRepository.ListApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}

	responses := make([]job.ApplicationResponse, 0, len(applications))
	for _, app := range applications {
		responses = append(responses, toApplicationResponse(app))
	}
	return responses, nil
}

func toPostingResponse(p job.Posting) job.PostingResponse {
	return job.PostingResponse{
		ID:          p.ID,
		Title:       p.Title,
		Department:  p.Department,
		Location:    p.Location,
		Description: p.Description,
		Openings:    p.Openings,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toApplicationResponse(a job.Application) job.ApplicationResponse {
	return job.ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		Email:     a.Email,
		FullName:  a.FullName,
		Phone:     a.Phone,
		Message:   a.Message,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
