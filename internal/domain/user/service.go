package user

import "context"

// AdminService defines the account approval workflow operations
type AdminService interface {
	// ListPendingUsers retrieves accounts awaiting approval
	ListPendingUsers(ctx context.Context) ([]PendingUserResponse, error)

	// ApproveUser activates a pending account; employee accounts get a
	// profile with the provided department/position/salary
	ApproveUser(ctx context.Context, req ApproveUserRequest) error

	// RejectUser rejects a pending account with a reason
	RejectUser(ctx context.Context, req RejectUserRequest) error
}
