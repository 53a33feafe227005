package ports

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// ListMealsInput carries all parameters for the public meal listing.
type ListMealsInput struct {
	ProviderID  string
	CategoryID  string
	DietaryType string
	MinPrice    float64
	MaxPrice    float64
	Search      string
	Page        int
	Limit       int
}

// ListMealsResult is returned by ListMeals.
type ListMealsResult struct {
	Items      []*domain.Meal
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// MealInput carries the provider-editable fields of a menu entry.
type MealInput struct {
	Title       string
	Description string
	Price       float64
	Image       string
	DietaryType string
	CategoryID  string
	IsAvailable bool
}

// MealService defines the public catalogue and provider menu-management use-cases.
type MealService interface {
	ListMeals(ctx context.Context, input ListMealsInput) (*ListMealsResult, error)
	GetMeal(ctx context.Context, id string) (*domain.Meal, error)
	// CreateMeal adds a menu entry owned by providerID.
	CreateMeal(ctx context.Context, providerID string, input MealInput) (*domain.Meal, error)
	// UpdateMeal edits a menu entry; providers can only touch their own meals.
	UpdateMeal(ctx context.Context, id, providerID string, input MealInput) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, id, providerID string) error
}

// CategoryService defines category browsing and admin management.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
