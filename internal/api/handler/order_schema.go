package handler

import (
	"time"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

type orderItemRequest struct {
	MealID   string `json:"mealId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type placeOrderRequest struct {
	ProviderID      string             `json:"providerId" validate:"required"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type placeOrderResponse struct {
	OrderID    string  `json:"orderId"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	CreatedAt  string  `json:"createdAt"`
}

type orderItemResponse struct {
	MealID   string  `json:"mealId"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type statusHistoryResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID              string                  `json:"id"`
	CustomerID      string                  `json:"customerId"`
	ProviderID      string                  `json:"providerId"`
	ProviderName    string                  `json:"providerName,omitempty"`
	Items           []orderItemResponse     `json:"items"`
	TotalPrice      float64                 `json:"totalPrice"`
	Status          string                  `json:"status"`
	DeliveryAddress string                  `json:"deliveryAddress"`
	StatusHistory   []statusHistoryResponse `json:"statusHistory"`
	CreatedAt       string                  `json:"createdAt"`
}

type listOrdersResponse struct {
	Items      []orderResponse    `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}

func toPlaceOrderResponse(r *ports.OrderResult) placeOrderResponse {
	return placeOrderResponse{
		OrderID:    r.OrderID,
		Status:     r.Status,
		TotalPrice: r.TotalPrice,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemResponse{
			MealID:   it.MealID,
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	history := make([]statusHistoryResponse, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, statusHistoryResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp.UTC().Format(time.RFC3339),
			Source:    h.Source,
			Notes:     h.Notes,
		})
	}
	return orderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		ProviderID:      o.ProviderID,
		ProviderName:    o.ProviderName,
		Items:           items,
		TotalPrice:      o.TotalPrice,
		Status:          string(o.Status),
		DeliveryAddress: o.DeliveryAddress,
		StatusHistory:   history,
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toListOrdersResponse(r *ports.ListOrdersResult) listOrdersResponse {
	items := make([]orderResponse, 0, len(r.Items))
	for _, o := range r.Items {
		items = append(items, toOrderResponse(o))
	}
	return listOrdersResponse{
		Items: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toPlaceOrderInput(customerID string, req placeOrderRequest, idempotencyKey string) ports.PlaceOrderInput {
	items := make([]ports.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ports.OrderItemInput{MealID: it.MealID, Quantity: it.Quantity})
	}
	return ports.PlaceOrderInput{
		CustomerID:      customerID,
		ProviderID:      req.ProviderID,
		DeliveryAddress: req.DeliveryAddress,
		Items:           items,
		IdempotencyKey:  idempotencyKey,
	}
}
