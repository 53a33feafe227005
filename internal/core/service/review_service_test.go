package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

type stubReviewRepo struct {
	created []*domain.Review
	byMeal  map[string][]*domain.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{byMeal: make(map[string][]*domain.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	review.ID = "rev_" + strconv.Itoa(len(r.created)+1)
	r.created = append(r.created, review)
	r.byMeal[review.MealID] = append(r.byMeal[review.MealID], review)
	return review, nil
}

func (r *stubReviewRepo) ListByMeal(_ context.Context, mealID string) ([]*domain.Review, error) {
	return r.byMeal[mealID], nil
}

func seedOrder(repo *stubOrderRepo, customerID, mealID string, status domain.OrderStatus) {
	now := time.Now().UTC()
	order := &domain.Order{
		CustomerID: customerID,
		ProviderID: "prov_1",
		Status:     status,
		CreatedAt:  now,
		Items:      []domain.OrderItem{{MealID: mealID, Title: "Meal " + mealID, Price: 10, Quantity: 1}},
	}
	order.ID = "order_" + strconv.Itoa(len(repo.created)+1)
	repo.created = append(repo.created, order)
	repo.byID[order.ID] = order
}

func TestReviewService_CreateReview_RequiresDeliveredOrder(t *testing.T) {
	orders := newStubOrderRepo()
	seedOrder(orders, "cust_1", "m1", domain.StatusPlaced) // not yet delivered

	svc := NewReviewService(newStubReviewRepo(), orders, newStubUserRepo())
	_, err := svc.CreateReview(context.Background(), ports.CreateReviewInput{
		MealID: "m1",
		UserID: "cust_1",
		Rating: 5,
	})

	if !errors.Is(err, domain.ErrReviewNotAllowed) {
		t.Errorf("expected ErrReviewNotAllowed, got %v", err)
	}
}

func TestReviewService_CreateReview_DeliveredOrderAllows(t *testing.T) {
	orders := newStubOrderRepo()
	seedOrder(orders, "cust_1", "m1", domain.StatusDelivered)

	users := newStubUserRepo()
	alice := &domain.User{ID: "cust_1", Name: "Alice", Email: "alice@example.com"}
	users.byID["cust_1"] = alice
	users.byEmail[alice.Email] = alice

	reviews := newStubReviewRepo()
	svc := NewReviewService(reviews, orders, users)

	review, err := svc.CreateReview(context.Background(), ports.CreateReviewInput{
		MealID:  "m1",
		UserID:  "cust_1",
		Rating:  4,
		Comment: "great biryani",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.UserName != "Alice" {
		t.Errorf("expected reviewer name enriched, got %q", review.UserName)
	}
	if len(reviews.created) != 1 {
		t.Errorf("expected review stored")
	}
}

func TestReviewService_CreateReview_OtherCustomersOrderDoesNotCount(t *testing.T) {
	orders := newStubOrderRepo()
	seedOrder(orders, "cust_2", "m1", domain.StatusDelivered)

	svc := NewReviewService(newStubReviewRepo(), orders, newStubUserRepo())
	_, err := svc.CreateReview(context.Background(), ports.CreateReviewInput{
		MealID: "m1",
		UserID: "cust_1",
		Rating: 5,
	})

	if !errors.Is(err, domain.ErrReviewNotAllowed) {
		t.Errorf("expected ErrReviewNotAllowed, got %v", err)
	}
}

func TestReviewService_CreateReview_RatingBounds(t *testing.T) {
	svc := NewReviewService(newStubReviewRepo(), newStubOrderRepo(), newStubUserRepo())

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.CreateReview(context.Background(), ports.CreateReviewInput{
			MealID: "m1",
			UserID: "cust_1",
			Rating: rating,
		})
		if !errors.Is(err, domain.ErrInvalidRating) {
			t.Errorf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}
