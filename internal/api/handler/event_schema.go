package handler

import "time"

type orderEventRequest struct {
	OrderID   string    `json:"orderId"   validate:"required"`
	Status    string    `json:"status"    validate:"required,oneof=DELIVERED CANCELLED"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Source    string    `json:"source"    validate:"required"`
	Notes     string    `json:"notes"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
