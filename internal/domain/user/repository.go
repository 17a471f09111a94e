package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create creates a new user account
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email (case-insensitive)
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByStatus retrieves users with the given account status
	ListByStatus(ctx context.Context, status Status) ([]User, error)

	// UpdateStatus transitions a user's account status
	UpdateStatus(ctx context.Context, id string, status Status) error
}
