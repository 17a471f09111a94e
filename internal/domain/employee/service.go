package employee

import "context"

// EmployeeService defines business logic for employee profiles
type EmployeeService interface {
	// List retrieves the full roster
	List(ctx context.Context) ([]EmployeeResponse, error)

	// GetByEmail retrieves a single profile by email
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)

	// Update updates profile fields (including ad hoc salary edits)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes a profile
	Delete(ctx context.Context, id string) error
}
