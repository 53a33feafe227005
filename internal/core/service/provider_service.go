package service

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// ProviderService implements public restaurant browsing.
type ProviderService struct {
	providers ports.ProviderRepository
}

func NewProviderService(providers ports.ProviderRepository) *ProviderService {
	return &ProviderService{providers: providers}
}

func (s *ProviderService) ListProviders(ctx context.Context, page, limit int) (*ports.ListProvidersResult, error) {
	page, limit = normalizePage(page, limit)

	items, total, err := s.providers.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListProvidersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *ProviderService) GetProvider(ctx context.Context, id string) (*domain.Provider, error) {
	return s.providers.FindByID(ctx, id)
}
