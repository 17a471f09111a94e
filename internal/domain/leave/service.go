package leave

import "context"

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// Submit files a new leave request for the caller
	Submit(ctx context.Context, subjectEmail string, req SubmitRequest) (RequestResponse, error)

	// List retrieves all leave requests (HR/admin view)
	List(ctx context.Context) ([]RequestResponse, error)

	// ListMine retrieves the caller's own requests
	ListMine(ctx context.Context, subjectEmail string) ([]RequestResponse, error)

	// Approve marks a pending request approved
	Approve(ctx context.Context, id string, decidedBy string) (RequestResponse, error)

	// Reject marks a pending request rejected with a reason
	Reject(ctx context.Context, req RejectLeaveRequest, decidedBy string) (RequestResponse, error)
}
