package ports

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// SetProviderID links a provider account to its restaurant profile.
	SetProviderID(ctx context.Context, userID, providerID string) error
}

// UserAdminRepository extends account persistence with the admin-only
// operations: listing, role changes, and deletion.
type UserAdminRepository interface {
	List(ctx context.Context, page, limit int) ([]*domain.User, int64, error)
	UpdateRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}
