package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

// MealHandler handles the public catalogue and provider menu management.
type MealHandler struct {
	service ports.MealService
}

func NewMealHandler(service ports.MealService) *MealHandler {
	return &MealHandler{service: service}
}

// List handles GET /v1/meals with the catalogue filters.
//
// @Summary      List meals
// @Tags         meals
// @Produce      json
// @Param        category  query     string  false  "Category ID"
// @Param        dietary   query     string  false  "Dietary type"
// @Param        provider  query     string  false  "Provider ID"
// @Param        minPrice  query     number  false  "Minimum price"
// @Param        maxPrice  query     number  false  "Maximum price"
// @Param        search    query     string  false  "Title search"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  listMealsResponse
// @Router       /v1/meals [get]
func (h *MealHandler) List(c echo.Context) error {
	input := ports.ListMealsInput{
		CategoryID:  c.QueryParam("category"),
		DietaryType: c.QueryParam("dietary"),
		ProviderID:  c.QueryParam("provider"),
		Search:      c.QueryParam("search"),
		Page:        queryInt(c, "page"),
		Limit:       queryInt(c, "limit"),
	}
	input.MinPrice, _ = strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	input.MaxPrice, _ = strconv.ParseFloat(c.QueryParam("maxPrice"), 64)

	result, err := h.service.ListMeals(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListMealsResponse(result))
}

// Get handles GET /v1/meals/:id.
//
// @Summary      Get a meal by ID
// @Tags         meals
// @Produce      json
// @Param        id   path      string  true  "Meal ID"
// @Success      200  {object}  mealResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/meals/{id} [get]
func (h *MealHandler) Get(c echo.Context) error {
	meal, err := h.service.GetMeal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMealResponse(meal))
}

// Create handles POST /v1/provider/meals — a provider adds a menu entry.
// Admins create on a provider's behalf by naming the provider in the body.
//
// @Summary      Create a meal
// @Tags         provider
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      mealRequest  true  "Meal details"
// @Success      201   {object}  mealResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/provider/meals [post]
func (h *MealHandler) Create(c echo.Context) error {
	role, _, providerID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req mealRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if role == domain.RoleAdmin {
		providerID = req.ProviderID
	}
	if providerID == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "providerId is required")
	}

	meal, err := h.service.CreateMeal(c.Request().Context(), providerID, toMealInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMealResponse(meal))
}

// Update handles PUT /v1/provider/meals/:id.
//
// @Summary      Update a meal
// @Tags         provider
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Meal ID"
// @Param        body  body      mealRequest  true  "Meal details"
// @Success      200   {object}  mealResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/provider/meals/{id} [put]
func (h *MealHandler) Update(c echo.Context) error {
	_, _, providerID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req mealRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	meal, err := h.service.UpdateMeal(c.Request().Context(), c.Param("id"), providerID, toMealInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMealResponse(meal))
}

// Delete handles DELETE /v1/provider/meals/:id.
//
// @Summary      Delete a meal
// @Tags         provider
// @Security     BearerAuth
// @Param        id  path  string  true  "Meal ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/provider/meals/{id} [delete]
func (h *MealHandler) Delete(c echo.Context) error {
	_, _, providerID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteMeal(c.Request().Context(), c.Param("id"), providerID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func queryInt(c echo.Context, name string) int {
	n, _ := strconv.Atoi(c.QueryParam(name))
	return n
}
