package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tareqferdous/foodhub-api/internal/api/metrics"
	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// CartStore maintains the single authoritative in-memory cart for one
// identity, mirrored to durable per-identity storage. It is an explicit
// object constructed per request/session; there is no package-level cart
// state. Every mutation re-serialises the full cart to storage; an empty
// cart deletes the stored record instead of writing an empty array.
//
// Persistence is fire-and-forget: when a write fails the in-memory state
// still reflects the mutation and the failure is only logged.
type CartStore struct {
	repo     ports.CartRepository
	log      zerolog.Logger
	identity string
	cart     domain.Cart
}

// NewCartStore creates a store bound to the guest identity with an empty
// cart. Call SwitchIdentity to load a stored cart.
func NewCartStore(repo ports.CartRepository, log zerolog.Logger) *CartStore {
	return &CartStore{repo: repo, log: log, identity: domain.GuestIdentity}
}

// SwitchIdentity discards the in-memory cart and loads whatever is stored
// under the new identity's key, so cart contents never leak between
// accounts across login, logout, or account switches. Load failures degrade
// to an empty cart rather than surfacing an error.
func (s *CartStore) SwitchIdentity(ctx context.Context, identity string) {
	if identity == "" {
		identity = domain.GuestIdentity
	}
	s.identity = identity
	s.cart = domain.Cart{}

	items, err := s.repo.Load(ctx, identity)
	if err != nil {
		s.log.Warn().Err(err).Str("identity", identity).Msg("cart load failed, starting empty")
		return
	}
	s.cart.Items = items
}

// Identity returns the identity the store is currently bound to.
func (s *CartStore) Identity() string {
	return s.identity
}

// Items returns the current line items.
func (s *CartStore) Items() []domain.CartItem {
	return s.cart.Items
}

// AddItem merges the selection into the cart and persists.
func (s *CartStore) AddItem(ctx context.Context, item ports.CartItemInput) {
	qty := item.Quantity
	if qty == 0 {
		qty = 1
	}
	s.cart.Add(domain.CartItem{
		MealID:       item.MealID,
		Title:        item.Title,
		Price:        item.Price,
		Image:        item.Image,
		ProviderID:   item.ProviderID,
		ProviderName: item.ProviderName,
		Quantity:     qty,
	})
	s.persist(ctx, "add")
}

// RemoveItem deletes the line item with the given meal ID and persists.
func (s *CartStore) RemoveItem(ctx context.Context, mealID string) {
	s.cart.Remove(mealID)
	s.persist(ctx, "remove")
}

// UpdateQuantity sets an absolute quantity (qty <= 0 removes) and persists.
func (s *CartStore) UpdateQuantity(ctx context.Context, mealID string, qty int) {
	s.cart.SetQuantity(mealID, qty)
	s.persist(ctx, "update")
}

// Clear empties the cart and removes the stored record.
func (s *CartStore) Clear(ctx context.Context) {
	s.cart.Clear()
	s.persist(ctx, "clear")
}

// ClearProvider removes all and only the given provider's items and persists.
func (s *CartStore) ClearProvider(ctx context.Context, providerID string) {
	s.cart.ClearProvider(providerID)
	s.persist(ctx, "clear_provider")
}

// View builds the derived read model: items, aggregates, provider grouping.
func (s *CartStore) View() *ports.CartView {
	return &ports.CartView{
		Identity:   s.identity,
		Items:      s.cart.Items,
		TotalItems: s.cart.TotalItems(),
		TotalPrice: s.cart.TotalPrice(),
		Providers:  domain.GroupByProvider(s.cart.Items),
	}
}

// persist mirrors the in-memory cart to storage. An empty cart deletes the
// record; stale empty keys must not accumulate.
func (s *CartStore) persist(ctx context.Context, op string) {
	metrics.CartMutationsTotal.WithLabelValues(op).Inc()

	var err error
	if s.cart.Empty() {
		err = s.repo.Delete(ctx, s.identity)
	} else {
		err = s.repo.Save(ctx, s.identity, s.cart.Items)
	}
	if err != nil {
		s.log.Warn().Err(err).
			Str("identity", s.identity).
			Str("op", op).
			Msg("cart persistence failed, in-memory state kept")
	}
}

// CartService exposes the cart use-cases over a fresh CartStore per call,
// keeping the HTTP layer stateless across requests.
type CartService struct {
	repo ports.CartRepository
	log  zerolog.Logger
}

func NewCartService(repo ports.CartRepository, log zerolog.Logger) *CartService {
	return &CartService{repo: repo, log: log}
}

func (s *CartService) open(ctx context.Context, identity string) *CartStore {
	store := NewCartStore(s.repo, s.log)
	store.SwitchIdentity(ctx, identity)
	return store
}

func (s *CartService) Get(ctx context.Context, identity string) (*ports.CartView, error) {
	return s.open(ctx, identity).View(), nil
}

func (s *CartService) AddItem(ctx context.Context, identity string, item ports.CartItemInput) (*ports.CartView, error) {
	store := s.open(ctx, identity)
	store.AddItem(ctx, item)
	return store.View(), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, identity, mealID string, qty int) (*ports.CartView, error) {
	store := s.open(ctx, identity)
	store.UpdateQuantity(ctx, mealID, qty)
	return store.View(), nil
}

func (s *CartService) RemoveItem(ctx context.Context, identity, mealID string) (*ports.CartView, error) {
	store := s.open(ctx, identity)
	store.RemoveItem(ctx, mealID)
	return store.View(), nil
}

func (s *CartService) Clear(ctx context.Context, identity string) (*ports.CartView, error) {
	store := s.open(ctx, identity)
	store.Clear(ctx)
	return store.View(), nil
}

func (s *CartService) ClearProvider(ctx context.Context, identity, providerID string) (*ports.CartView, error) {
	store := s.open(ctx, identity)
	store.ClearProvider(ctx, providerID)
	return store.View(), nil
}
