package domain

import (
	"errors"
	"time"
)

var ErrReviewNotAllowed = errors.New("review not allowed")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Review is a customer's rating of a meal from a delivered order.
type Review struct {
	ID        string    `json:"id"`
	MealID    string    `json:"mealId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
