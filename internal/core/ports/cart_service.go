package ports

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// CartItemInput carries the fields of a meal selection being added to a cart.
type CartItemInput struct {
	MealID       string
	Title        string
	Price        float64
	Image        string
	ProviderID   string
	ProviderName string
	Quantity     int
}

// CartView is the derived, non-persisted read model returned after every cart
// operation: the line items plus the aggregates the UI renders.
type CartView struct {
	Identity   string
	Items      []domain.CartItem
	TotalItems int
	TotalPrice float64
	Providers  []domain.ProviderGroup
}

// CartService defines the cart use-cases, each scoped to one caller identity
// (user ID, or "guest" when unauthenticated).
type CartService interface {
	Get(ctx context.Context, identity string) (*CartView, error)
	// AddItem merges the selection into the cart: an existing meal ID has its
	// quantity incremented, a new one is appended.
	AddItem(ctx context.Context, identity string, item CartItemInput) (*CartView, error)
	// UpdateQuantity sets an absolute quantity; qty <= 0 removes the item.
	UpdateQuantity(ctx context.Context, identity, mealID string, qty int) (*CartView, error)
	RemoveItem(ctx context.Context, identity, mealID string) (*CartView, error)
	Clear(ctx context.Context, identity string) (*CartView, error)
	// ClearProvider removes all and only the given provider's items, invoked
	// after an order is successfully placed for that provider.
	ClearProvider(ctx context.Context, identity, providerID string) (*CartView, error)
}
