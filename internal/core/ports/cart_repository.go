package ports

import (
	"context"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// CartRepository defines persistence for per-identity carts. A cart is stored
// as a serialised array of line items under an identity-scoped key; absence
// of the key means an empty cart.
type CartRepository interface {
	// Load returns the stored line items for identity, or an empty slice when
	// nothing is stored. An unparseable payload is treated as absent: the
	// corrupt record is cleared and an empty slice returned, not an error.
	Load(ctx context.Context, identity string) ([]domain.CartItem, error)
	// Save overwrites the stored cart for identity with items.
	Save(ctx context.Context, identity string, items []domain.CartItem) error
	// Delete removes the stored record for identity entirely, so empty carts
	// never accumulate as stale keys.
	Delete(ctx context.Context, identity string) error
}
