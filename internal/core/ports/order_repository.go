package ports

import (
	"context"
	"time"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
)

// ListOrdersFilter carries all query parameters for listing orders.
// Customer/provider scoping is always enforced by the service layer.
type ListOrdersFilter struct {
	CustomerID string    // non-empty = scoped to one customer
	ProviderID string    // non-empty = scoped to one provider
	Status     string    // optional: filter by order status
	DateFrom   time.Time // optional: created_at >= DateFrom
	DateTo     time.Time // optional: created_at <= DateTo
	Page       int       // 1-based
	Limit      int       // max rows per page (capped at 100 by service)
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
	List(ctx context.Context, filter ListOrdersFilter) ([]*domain.Order, int64, error)
}

// OrderEventRepository handles event persistence and atomic order status updates.
type OrderEventRepository interface {
	// UpdateOrderStatus atomically sets the order's new status and appends a
	// history entry carrying the event's source and notes.
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, ts time.Time, source, notes string) error
	// InsertEvent persists an event to the order_events audit collection.
	InsertEvent(ctx context.Context, event *domain.OrderEvent) error
}
