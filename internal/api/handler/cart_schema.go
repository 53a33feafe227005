package handler

import (
	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type addCartItemRequest struct {
	MealID       string  `json:"mealId"       validate:"required"`
	Title        string  `json:"title"        validate:"required"`
	Price        float64 `json:"price"        validate:"gte=0"`
	Image        string  `json:"image"`
	ProviderID   string  `json:"providerId"   validate:"required"`
	ProviderName string  `json:"providerName" validate:"required"`
	Quantity     int     `json:"quantity"     validate:"omitempty,min=1"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartResponse is the full cart view returned after every cart operation.
type cartResponse struct {
	Items      []domain.CartItem      `json:"items"`
	TotalItems int                    `json:"totalItems"`
	TotalPrice float64                `json:"totalPrice"`
	Providers  []domain.ProviderGroup `json:"providers"`
}

func toCartResponse(v *ports.CartView) cartResponse {
	items := v.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: v.TotalItems,
		TotalPrice: v.TotalPrice,
		Providers:  v.Providers,
	}
}
