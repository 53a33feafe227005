package ports

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// ProviderRepository defines persistence for restaurant profiles.
type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) (*domain.Provider, error)
	FindByID(ctx context.Context, id string) (*domain.Provider, error)
	List(ctx context.Context, page, limit int) ([]*domain.Provider, int64, error)
}

// ListProvidersResult is returned by ListProviders.
type ListProvidersResult struct {
	Items      []*domain.Provider
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProviderService defines the public restaurant browsing use-cases.
type ProviderService interface {
	ListProviders(ctx context.Context, page, limit int) (*ListProvidersResult, error)
	GetProvider(ctx context.Context, id string) (*domain.Provider, error)
}
