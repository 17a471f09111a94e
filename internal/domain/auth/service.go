package auth

import "context"

// AuthService defines authentication operations
type AuthService interface {
	// Register creates a PENDING account awaiting admin approval
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// Login authenticates an active account and issues tokens
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes a refresh token
	Logout(ctx context.Context, refreshToken string) error

	// LoginWithGoogleEmail issues tokens for an active account matched by
	// a verified Google email
	LoginWithGoogleEmail(ctx context.Context, email string) (TokenResponse, error)
}
