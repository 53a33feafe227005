package ports

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// RegisterInput carries everything needed to create an account. Providers
// additionally supply the restaurant details their profile is created with.
type RegisterInput struct {
	Name           string
	Email          string
	Password       string
	Role           string
	RestaurantName string
	Cuisine        string
	Address        string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
