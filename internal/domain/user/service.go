package user

import (
	"context"
)

// UserService defines business logic for user management (admin only).
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	GetUser(ctx context.Context, id string) (UserResponse, error)

	ListUsers(ctx context.Context) ([]UserResponse, error)

	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, id string) error
}
