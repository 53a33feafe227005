package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// validTransitions defines the allowed state machine transitions.
// DELIVERED and CANCELLED are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPlaced: {StatusDelivered, StatusCancelled},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyOrder = errors.New("order has no items")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidOrderStatus reports whether s names a known order status.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case StatusPlaced, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is one meal line inside an order. The unit price is captured from
// the catalogue at placement time, so later menu edits never change past orders.
type OrderItem struct {
	MealID   string  `json:"mealId" bson:"meal_id"`
	Title    string  `json:"title" bson:"title"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
}

// StatusHistoryEntry records a single status transition on an order.
type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status" bson:"status"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
	Source    string      `json:"source,omitempty" bson:"source,omitempty"`
	Notes     string      `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order is the core aggregate root: one customer's purchase from one provider.
type Order struct {
	ID              string               `json:"id" bson:"_id,omitempty"`
	CustomerID      string               `json:"customerId" bson:"customer_id"`
	ProviderID      string               `json:"providerId" bson:"provider_id"`
	ProviderName    string               `json:"providerName" bson:"provider_name"`
	DeliveryAddress string               `json:"deliveryAddress" bson:"delivery_address"`
	Items           []OrderItem          `json:"items" bson:"items"`
	TotalPrice      float64              `json:"totalPrice" bson:"total_price"`
	Status          OrderStatus          `json:"status" bson:"status"`
	CreatedAt       time.Time            `json:"createdAt" bson:"created_at"`
	IdempotencyKey  string               `json:"-" bson:"idempotency_key,omitempty"`
	StatusHistory   []StatusHistoryEntry `json:"statusHistory" bson:"status_history"`
}

// OrderEvent represents a status update received from a fulfilment source
// (provider dashboard, delivery integration, admin console).
type OrderEvent struct {
	OrderID   string
	Status    OrderStatus
	Timestamp time.Time
	Source    string
	Notes     string
}
