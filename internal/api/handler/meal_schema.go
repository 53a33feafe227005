package handler

import (
	"time"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

type mealRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Image       string  `json:"image"`
	DietaryType string  `json:"dietaryType" validate:"omitempty,oneof=HALAL VEGETARIAN VEGAN NONE"`
	CategoryID  string  `json:"categoryId"`
	IsAvailable bool    `json:"isAvailable"`
	// ProviderID is only honoured for admin callers creating a meal on a
	// provider's behalf; provider tokens already carry their own.
	ProviderID string `json:"providerId"`
}

// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type mealResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	Image        string    `json:"image,omitempty"`
	DietaryType  string    `json:"dietaryType,omitempty"`
	IsAvailable  bool      `json:"isAvailable"`
	ProviderID   string    `json:"providerId"`
	ProviderName string    `json:"providerName,omitempty"`
	CategoryID   string    `json:"categoryId,omitempty"`
	CategoryName string    `json:"categoryName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type listMealsResponse struct {
	Data       []mealResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toMealResponse(m *domain.Meal) mealResponse {
	return mealResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Price:        m.Price,
		Image:        m.Image,
		DietaryType:  string(m.DietaryType),
		IsAvailable:  m.IsAvailable,
		ProviderID:   m.ProviderID,
		ProviderName: m.ProviderName,
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func toListMealsResponse(r *ports.ListMealsResult) listMealsResponse {
	items := make([]mealResponse, len(r.Items))
	for i, m := range r.Items {
		items[i] = toMealResponse(m)
	}
	return listMealsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toMealInput(req mealRequest) ports.MealInput {
	return ports.MealInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		DietaryType: req.DietaryType,
		CategoryID:  req.CategoryID,
		IsAvailable: req.IsAvailable,
	}
}
