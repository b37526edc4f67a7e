package auth

import (
	"context"
)

// AuthService defines authentication operations.
type AuthService interface {
	// Login verifies credentials and issues access/refresh tokens.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Verify resolves the authenticated user from the request context.
	Verify(ctx context.Context) (SessionUser, error)

	// UpdateProfile changes the caller's username and optionally password.
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (SessionUser, error)
}
