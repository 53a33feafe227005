package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

type listProvidersResponse struct {
	Items      []*domain.Provider `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}

// ProviderHandler handles public restaurant browsing.
type ProviderHandler struct {
	service ports.ProviderService
}

func NewProviderHandler(service ports.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// List handles GET /v1/providers.
//
// @Summary      List restaurants
// @Tags         providers
// @Produce      json
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listProvidersResponse
// @Router       /v1/providers [get]
func (h *ProviderHandler) List(c echo.Context) error {
	result, err := h.service.ListProviders(c.Request().Context(), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProvidersResponse{
		Items: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Get handles GET /v1/providers/:id.
//
// @Summary      Get a restaurant by ID
// @Tags         providers
// @Produce      json
// @Param        id   path      string  true  "Provider ID"
// @Success      200  {object}  domain.Provider
// @Failure      404  {object}  errorResponse
// @Router       /v1/providers/{id} [get]
func (h *ProviderHandler) Get(c echo.Context) error {
	provider, err := h.service.GetProvider(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, provider)
}
