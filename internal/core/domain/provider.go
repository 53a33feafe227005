package domain

import (
	"errors"
	"time"
)

var ErrProviderNotFound = errors.New("provider not found")

// Provider is a restaurant/seller profile that owns meals and receives orders.
// It is created alongside the registration of its owning user.
type Provider struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	RestaurantName string    `json:"restaurantName"`
	Cuisine        string    `json:"cuisine,omitempty"`
	Address        string    `json:"address,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Image          string    `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
