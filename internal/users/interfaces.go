package users

import (
	"context"
)

// UserStore defines the interface for user storage operations
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, userID string) (*User, bool)
	// SetStatus changes the status of a non-admin user. It returns false when
	// the user does not exist or is an admin.
	SetStatus(ctx context.Context, userID string, status UserStatus) bool
	ListUsers(ctx context.Context) []*User
	Clear(ctx context.Context)
}

// UserService defines the interface for user service operations
type UserService interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	GetUserByID(ctx context.Context, userID string) *User
	DeactivateUser(ctx context.Context, userID string) bool
	ListUsers(ctx context.Context) []*User
	GenerateUserReport(ctx context.Context) string
	Reset(ctx context.Context)
}
