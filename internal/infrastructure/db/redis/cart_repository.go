package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// CartRepository persists carts in Redis as a JSON array of line items under
// an identity-scoped key (cart_<userId>, cart_guest). Absence of the key
// means an empty cart; carts are durable, so no TTL is set.
type CartRepository struct {
	client *redis.Client
}

// NewCartRepository creates a CartRepository wrapping the given Redis client.
func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{client: client}
}

// Load returns the stored line items for identity. A missing key yields an
// empty slice. An unparseable payload is treated as absent: the corrupt
// record is deleted and an empty slice returned.
func (r *CartRepository) Load(ctx context.Context, identity string) ([]domain.CartItem, error) {
	key := cartKey(identity)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cart load: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		_ = r.client.Del(ctx, key).Err()
		return nil, nil
	}
	return items, nil
}

// Save overwrites the stored cart for identity with the full item list.
func (r *CartRepository) Save(ctx context.Context, identity string, items []domain.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	return r.client.Set(ctx, cartKey(identity), data, 0).Err()
}

// Delete removes the stored record for identity entirely.
func (r *CartRepository) Delete(ctx context.Context, identity string) error {
	return r.client.Del(ctx, cartKey(identity)).Err()
}

func cartKey(identity string) string {
	return "cart_" + identity
}
