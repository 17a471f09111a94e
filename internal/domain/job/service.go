package job

import "context"

// JobService defines business logic for job postings
type JobService interface {
	// Create publishes a new posting
	Create(ctx context.Context, req CreatePostingRequest, postedBy string) (PostingResponse, error)

	// List retrieves all postings
	List(ctx context.Context) ([]PostingResponse, error)

	// Get retrieves a single posting
	Get(ctx context.Context, id string) (PostingResponse, error)

	// Apply files the caller's application against an open posting
	Apply(ctx context.Context, subjectEmail string, req ApplyRequest) (ApplicationResponse, error)

	// ListApplications retrieves all applications (HR/admin view)
	ListApplications(ctx context.Context) ([]ApplicationResponse, error)
}
