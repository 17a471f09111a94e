package job

import "context"

// JobRepository defines data access methods for job postings and applications.
type JobRepository interface {
	// CreatePosting creates a new posting with an OPEN status
	CreatePosting(ctx context.Context, posting Posting) (Posting, error)

	// GetPostingByID retrieves a posting by ID
	GetPostingByID(ctx context.Context, id string) (Posting, error)

	// ListPostings retrieves all postings, newest first
	ListPostings(ctx context.Context) ([]Posting, error)

	// CreateApplication records one application; at most one per subject
	// and posting
	CreateApplication(ctx context.Context, app Application) (Application, error)

	// ListApplications retrieves all applications, newest first
	ListApplications(ctx context.Context) ([]Application, error)
}
