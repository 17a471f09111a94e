package leave

import "context"

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	// Create creates a new leave request with a PENDING decision
	Create(ctx context.Context, req Request) (Request, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (Request, error)

	// List retrieves all leave requests
	List(ctx context.Context) ([]Request, error)

	// ListBySubject retrieves all requests for one subject
	ListBySubject(ctx context.Context, email string) ([]Request, error)

	// UpdateDecision records the HR/admin decision on a pending request
	UpdateDecision(ctx context.Context, id string, decision Decision, rejectReason *string, decidedBy string) error
}
