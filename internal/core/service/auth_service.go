package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users     ports.AuthRepository
	providers ports.ProviderRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.AuthRepository, providers ports.ProviderRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, providers: providers, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a user account. Registering a provider also creates the
// restaurant profile the account owns.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}
	if input.Role == domain.RoleProvider && input.RestaurantName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if input.Role == domain.RoleProvider {
		profile, err := s.providers.Create(ctx, &domain.Provider{
			UserID:         created.ID,
			RestaurantName: input.RestaurantName,
			Cuisine:        input.Cuisine,
			Address:        input.Address,
			CreatedAt:      now,
		})
		if err != nil {
			return nil, err
		}
		if err := s.users.SetProviderID(ctx, created.ID, profile.ID); err != nil {
			return nil, err
		}
		created.ProviderID = profile.ID
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     user.ID,
		"role":        user.Role,
		"provider_id": user.ProviderID,
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
