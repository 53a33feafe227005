package ports

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// ReviewRepository defines persistence for meal reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	ListByMeal(ctx context.Context, mealID string) ([]*domain.Review, error)
}

// CreateReviewInput carries a customer's rating of a meal.
type CreateReviewInput struct {
	MealID  string
	UserID  string
	Rating  int
	Comment string
}

// ReviewService defines the review use-cases. Creation is restricted to
// customers with a delivered order containing the meal.
type ReviewService interface {
	CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	ListReviews(ctx context.Context, mealID string) ([]*domain.Review, error)
}
