package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// CartHandler handles HTTP requests for cart operations. The cart identity
// comes from the optional auth claims, falling back to the guest identity.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /v1/cart — the current cart with aggregates and grouping.
//
// @Summary      Get the caller's cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), cartIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// AddItem handles POST /v1/cart/items.
//
// @Summary      Add a meal to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Meal selection"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	view, err := h.service.AddItem(c.Request().Context(), cartIdentity(c), ports.CartItemInput{
		MealID:       req.MealID,
		Title:        req.Title,
		Price:        req.Price,
		Image:        req.Image,
		ProviderID:   req.ProviderID,
		ProviderName: req.ProviderName,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// UpdateQuantity handles PUT /v1/cart/items/:meal_id. A quantity of zero or
// less removes the item.
//
// @Summary      Set a line item's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        meal_id  path      string                 true  "Meal ID"
// @Param        body     body      updateQuantityRequest  true  "New quantity"
// @Success      200      {object}  cartResponse
// @Failure      400      {object}  errorResponse
// @Router       /v1/cart/items/{meal_id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.UpdateQuantity(c.Request().Context(), cartIdentity(c), c.Param("meal_id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// RemoveItem handles DELETE /v1/cart/items/:meal_id.
//
// @Summary      Remove a line item
// @Tags         cart
// @Produce      json
// @Param        meal_id  path      string  true  "Meal ID"
// @Success      200      {object}  cartResponse
// @Router       /v1/cart/items/{meal_id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.service.RemoveItem(c.Request().Context(), cartIdentity(c), c.Param("meal_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// Clear handles DELETE /v1/cart — empties the whole cart.
//
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	view, err := h.service.Clear(c.Request().Context(), cartIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}

// ClearProvider handles DELETE /v1/cart/providers/:provider_id — removes one
// provider's items after their order is placed, leaving the rest untouched.
//
// @Summary      Clear one provider's items
// @Tags         cart
// @Produce      json
// @Param        provider_id  path      string  true  "Provider ID"
// @Success      200          {object}  cartResponse
// @Router       /v1/cart/providers/{provider_id} [delete]
func (h *CartHandler) ClearProvider(c echo.Context) error {
	view, err := h.service.ClearProvider(c.Request().Context(), cartIdentity(c), c.Param("provider_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(view))
}
