package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tareqferdous/foodhub-api/internal/api/metrics"
	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// OrderService implements order placement and retrieval.
type OrderService struct {
	orders    ports.OrderRepository
	meals     ports.MealRepository
	providers ports.ProviderRepository
	logger    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, meals ports.MealRepository, providers ports.ProviderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, meals: meals, providers: providers, logger: logger}
}

// PlaceOrder creates a new order for one provider. Unit prices are captured
// from the catalogue, never from the client; unknown or unavailable meals
// reject the whole order. If an idempotency key is provided and already seen,
// the previously created order is returned without side effects.
func (s *OrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*ports.OrderResult, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	if input.IdempotencyKey != "" {
		existing, err := s.orders.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("order_id", existing.ID).Msg("idempotent replay")
			return &ports.OrderResult{
				OrderID:        existing.ID,
				Status:         string(existing.Status),
				TotalPrice:     existing.TotalPrice,
				CreatedAt:      existing.CreatedAt,
				AlreadyExisted: true,
			}, nil
		}
	}

	provider, err := s.providers.FindByID(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.MealID)
	}
	catalogue, err := s.meals.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Meal, len(catalogue))
	for _, m := range catalogue {
		byID[m.ID] = m
	}

	now := time.Now().UTC()
	order := &domain.Order{
		CustomerID:      input.CustomerID,
		ProviderID:      input.ProviderID,
		ProviderName:    provider.RestaurantName,
		DeliveryAddress: input.DeliveryAddress,
		Status:          domain.StatusPlaced,
		CreatedAt:       now,
		IdempotencyKey:  input.IdempotencyKey,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusPlaced, Timestamp: now, Source: "checkout"},
		},
	}

	for _, item := range input.Items {
		meal, ok := byID[item.MealID]
		if !ok {
			return nil, domain.ErrMealNotFound
		}
		if !meal.IsAvailable {
			return nil, domain.ErrMealUnavailable
		}
		if meal.ProviderID != input.ProviderID {
			return nil, domain.ErrMealNotFound
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		order.Items = append(order.Items, domain.OrderItem{
			MealID:   meal.ID,
			Title:    meal.Title,
			Price:    meal.Price,
			Quantity: qty,
		})
		order.TotalPrice += meal.Price * float64(qty)
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("provider_id", input.ProviderID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersPlacedTotal.WithLabelValues(input.ProviderID).Inc()
	s.logger.Info().
		Str("order_id", created.ID).
		Str("customer_id", input.CustomerID).
		Str("provider_id", input.ProviderID).
		Float64("total_price", created.TotalPrice).
		Msg("order placed")

	return &ports.OrderResult{
		OrderID:    created.ID,
		Status:     string(created.Status),
		TotalPrice: created.TotalPrice,
		CreatedAt:  created.CreatedAt,
	}, nil
}

// GetOrder retrieves a single order with role scoping: customers only see
// their own orders, providers only their restaurant's, admins see all.
func (s *OrderService) GetOrder(ctx context.Context, input ports.GetOrderInput) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	switch input.Role {
	case domain.RoleAdmin:
	case domain.RoleProvider:
		if order.ProviderID != input.ProviderID {
			return nil, domain.ErrForbidden
		}
	default:
		if order.CustomerID != input.UserID {
			return nil, domain.ErrForbidden
		}
	}

	return order, nil
}

// ListOrders returns a page of orders scoped by role: customers get their
// own, providers get their restaurant's, admins get everything.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) (*ports.ListOrdersResult, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	filter := ports.ListOrdersFilter{
		Status:   input.Status,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Page:     page,
		Limit:    limit,
	}
	switch input.Role {
	case domain.RoleAdmin:
	case domain.RoleProvider:
		filter.ProviderID = input.ProviderID
	default:
		filter.CustomerID = input.UserID
	}

	items, total, err := s.orders.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, err
	}

	return &ports.ListOrdersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}
