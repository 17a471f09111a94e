package employee

import "context"

// EmployeeRepository defines data access methods for employee profiles.
type EmployeeRepository interface {
	// Create creates a new employee profile
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email (case-insensitive)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List retrieves all employee profiles
	List(ctx context.Context) ([]Employee, error)

	// Update updates mutable profile fields
	Update(ctx context.Context, emp Employee) error

	// Delete removes an employee profile
	Delete(ctx context.Context, id string) error
}
