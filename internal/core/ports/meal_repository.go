package ports

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// ListMealsFilter carries all query parameters for listing meals.
type ListMealsFilter struct {
	ProviderID    string // optional: only this provider's menu
	CategoryID    string // optional: filter by category
	DietaryType   string // optional: HALAL, VEGETARIAN, VEGAN, NONE
	MinPrice      float64
	MaxPrice      float64 // 0 = unbounded
	Search        string  // optional: partial match on title
	AvailableOnly bool    // true for the public catalogue, false for menu management
	Page          int     // 1-based
	Limit         int     // max rows per page (capped at 100 by service)
}

// MealRepository defines persistence operations for the meal catalogue.
type MealRepository interface {
	Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error)
	FindByID(ctx context.Context, id string) (*domain.Meal, error)
	// FindByIDs returns the meals for the given IDs; missing IDs are simply
	// absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Meal, error)
	List(ctx context.Context, filter ListMealsFilter) ([]*domain.Meal, int64, error)
	// Update overwrites the mutable fields of a meal. When providerID is
	// non-empty the write is additionally filtered by provider (ownership).
	Update(ctx context.Context, m *domain.Meal, providerID string) error
	// Delete removes a meal, filtered by provider when providerID is non-empty.
	Delete(ctx context.Context, id, providerID string) error
}

// CategoryRepository defines persistence for admin-managed categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
