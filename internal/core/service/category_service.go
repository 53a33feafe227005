package service

import (
	"context"
	"time"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// CategoryService implements category browsing and admin management.
type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	return s.categories.Create(ctx, &domain.Category{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
