package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// MealService implements the public catalogue and provider menu management.
type MealService struct {
	meals      ports.MealRepository
	categories ports.CategoryRepository
	providers  ports.ProviderRepository
	logger     zerolog.Logger
}

func NewMealService(meals ports.MealRepository, categories ports.CategoryRepository, providers ports.ProviderRepository, logger zerolog.Logger) *MealService {
	return &MealService{meals: meals, categories: categories, providers: providers, logger: logger}
}

// ListMeals returns a page of the public catalogue. Only available meals are
// listed; unavailable entries stay visible to their provider via the
// provider-scoped filter.
func (s *MealService) ListMeals(ctx context.Context, input ports.ListMealsInput) (*ports.ListMealsResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := s.meals.List(ctx, ports.ListMealsFilter{
		ProviderID:    input.ProviderID,
		CategoryID:    input.CategoryID,
		DietaryType:   input.DietaryType,
		MinPrice:      input.MinPrice,
		MaxPrice:      input.MaxPrice,
		Search:        input.Search,
		AvailableOnly: true,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list meals")
		return nil, err
	}

	return &ports.ListMealsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *MealService) GetMeal(ctx context.Context, id string) (*domain.Meal, error) {
	return s.meals.FindByID(ctx, id)
}

// CreateMeal adds a menu entry owned by providerID.
func (s *MealService) CreateMeal(ctx context.Context, providerID string, input ports.MealInput) (*domain.Meal, error) {
	provider, err := s.providers.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	categoryName, err := s.categoryName(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	meal := &domain.Meal{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Image:        input.Image,
		DietaryType:  dietaryOrDefault(input.DietaryType),
		IsAvailable:  input.IsAvailable,
		ProviderID:   providerID,
		ProviderName: provider.RestaurantName,
		CategoryID:   input.CategoryID,
		CategoryName: categoryName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.meals.Create(ctx, meal)
	if err != nil {
		s.logger.Error().Err(err).Str("provider_id", providerID).Msg("failed to create meal")
		return nil, err
	}

	s.logger.Info().Str("meal_id", created.ID).Str("provider_id", providerID).Msg("meal created")
	return created, nil
}

// UpdateMeal edits a menu entry. The provider filter guarantees a provider
// only touches its own meals; an admin passes an empty providerID.
func (s *MealService) UpdateMeal(ctx context.Context, id, providerID string, input ports.MealInput) (*domain.Meal, error) {
	existing, err := s.meals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if providerID != "" && existing.ProviderID != providerID {
		return nil, domain.ErrForbidden
	}
	categoryName, err := s.categoryName(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Price = input.Price
	existing.Image = input.Image
	existing.DietaryType = dietaryOrDefault(input.DietaryType)
	existing.IsAvailable = input.IsAvailable
	existing.CategoryID = input.CategoryID
	existing.CategoryName = categoryName
	existing.UpdatedAt = time.Now().UTC()

	if err := s.meals.Update(ctx, existing, providerID); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, id, providerID string) error {
	return s.meals.Delete(ctx, id, providerID)
}

func (s *MealService) categoryName(ctx context.Context, categoryID string) (string, error) {
	if categoryID == "" {
		return "", nil
	}
	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return "", err
	}
	return category.Name, nil
}

func dietaryOrDefault(s string) domain.DietaryType {
	if s == "" {
		return domain.DietaryNone
	}
	return domain.DietaryType(s)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
