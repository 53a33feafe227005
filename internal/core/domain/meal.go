package domain

import (
	"errors"
	"time"
)

// DietaryType classifies a meal for dietary filtering.
type DietaryType string

const (
	DietaryHalal      DietaryType = "HALAL"
	DietaryVegetarian DietaryType = "VEGETARIAN"
	DietaryVegan      DietaryType = "VEGAN"
	DietaryNone       DietaryType = "NONE"
)

var ErrMealNotFound = errors.New("meal not found")
var ErrMealUnavailable = errors.New("meal not available")
var ErrCategoryNotFound = errors.New("category not found")

// Meal is a menu entry owned by a provider.
type Meal struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Price        float64     `json:"price"`
	Image        string      `json:"image,omitempty"`
	DietaryType  DietaryType `json:"dietaryType,omitempty"`
	IsAvailable  bool        `json:"isAvailable"`
	ProviderID   string      `json:"providerId"`
	ProviderName string      `json:"providerName,omitempty"`
	CategoryID   string      `json:"categoryId,omitempty"`
	CategoryName string      `json:"categoryName,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Category is an admin-managed meal grouping (e.g. "Biryani", "Burgers").
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
