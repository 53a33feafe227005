package service

import (
	"context"
	"time"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// ReviewService implements meal reviews. A customer may only review a meal
// they received in a delivered order.
type ReviewService struct {
	reviews ports.ReviewRepository
	orders  ports.OrderRepository
	users   ports.AuthRepository
}

func NewReviewService(reviews ports.ReviewRepository, orders ports.OrderRepository, users ports.AuthRepository) *ReviewService {
	return &ReviewService{reviews: reviews, orders: orders, users: users}
}

func (s *ReviewService) CreateReview(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	delivered, err := s.hasDeliveredMeal(ctx, input.UserID, input.MealID)
	if err != nil {
		return nil, err
	}
	if !delivered {
		return nil, domain.ErrReviewNotAllowed
	}

	review := &domain.Review{
		MealID:    input.MealID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if user, err := s.users.FindByID(ctx, input.UserID); err == nil {
		review.UserName = user.Name
	}

	return s.reviews.Create(ctx, review)
}

func (s *ReviewService) ListReviews(ctx context.Context, mealID string) ([]*domain.Review, error) {
	return s.reviews.ListByMeal(ctx, mealID)
}

// hasDeliveredMeal scans the customer's delivered orders for the meal.
func (s *ReviewService) hasDeliveredMeal(ctx context.Context, userID, mealID string) (bool, error) {
	page := 1
	for {
		orders, _, err := s.orders.List(ctx, ports.ListOrdersFilter{
			CustomerID: userID,
			Status:     string(domain.StatusDelivered),
			Page:       page,
			Limit:      maxPageLimit,
		})
		if err != nil {
			return false, err
		}
		for _, order := range orders {
			for _, item := range order.Items {
				if item.MealID == mealID {
					return true, nil
				}
			}
		}
		if len(orders) < maxPageLimit {
			return false, nil
		}
		page++
	}
}
