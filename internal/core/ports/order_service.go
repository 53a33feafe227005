package ports

import (
	"context"
	"time"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// OrderItemInput is one line of a placement request. Prices are never taken
// from the client; the service captures them from the catalogue.
type OrderItemInput struct {
	MealID   string
	Quantity int
}

// PlaceOrderInput mirrors the checkout boundary: one provider's items from
// the customer's cart plus a delivery address.
type PlaceOrderInput struct {
	CustomerID      string
	ProviderID      string
	DeliveryAddress string
	Items           []OrderItemInput
	IdempotencyKey  string
}

// OrderResult is returned by the service after placing an order.
type OrderResult struct {
	OrderID    string
	Status     string
	TotalPrice float64
	CreatedAt  time.Time
	// AlreadyExisted is true when the Idempotency-Key matched an existing order.
	AlreadyExisted bool
}

// GetOrderInput carries the parameters needed to retrieve a single order.
// Role plus the caller identifiers enforce scoping: customers only see their
// own orders, providers only their restaurant's.
type GetOrderInput struct {
	OrderID    string
	Role       string
	UserID     string
	ProviderID string
}

// ListOrdersInput carries all parameters for the list endpoints.
type ListOrdersInput struct {
	Role       string
	UserID     string
	ProviderID string
	Status     string
	DateFrom   time.Time
	DateTo     time.Time
	Page       int
	Limit      int
}

// ListOrdersResult is returned by ListOrders.
type ListOrdersResult struct {
	Items      []*domain.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*OrderResult, error)
	GetOrder(ctx context.Context, input GetOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, input ListOrdersInput) (*ListOrdersResult, error)
}

// OrderEventInput is the DTO passed from the transport layer to OrderEventService.
type OrderEventInput struct {
	OrderID   string
	Status    string
	Timestamp time.Time
	Source    string
	Notes     string
}

// OrderEventService processes incoming order status events.
type OrderEventService interface {
	Process(ctx context.Context, event OrderEventInput) error
}
