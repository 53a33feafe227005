package ports

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Items      []*domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminService defines the platform administration use-cases.
type AdminService interface {
	ListUsers(ctx context.Context, page, limit int) (*ListUsersResult, error)
	// ChangeRole updates a user's role. Only known roles are accepted.
	ChangeRole(ctx context.Context, userID, role string) error
	DeleteUser(ctx context.Context, userID string) error
}
