package user

import (
	"context"
)

// UserRepository defines data access methods for application users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves an active user by username. Used by login.
	GetByUsername(ctx context.Context, username string) (User, error)

	// ListActive retrieves all active users ordered by creation time.
	ListActive(ctx context.Context) ([]User, error)

	Update(ctx context.Context, u User) error

	// Deactivate soft-deletes a user.
	Deactivate(ctx context.Context, id string) error
}
