package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
	"github.com/tareqferdous/foodhub-api/pkg/logger"
)

const headerIdempotencyKey = "Idempotency-Key"

// OrderHandler handles order placement and retrieval. It also talks to the
// cart service so a successful checkout clears the ordered provider's items
// from the customer's cart.
type OrderHandler struct {
	orders ports.OrderService
	carts  ports.CartService
}

func NewOrderHandler(orders ports.OrderService, carts ports.CartService) *OrderHandler {
	return &OrderHandler{orders: orders, carts: carts}
}

// Place handles POST /v1/orders.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string            false  "Replay protection key"
// @Param        body             body      placeOrderRequest  true  "Order details"
// @Success      201              {object}  placeOrderResponse
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	_, userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	key := c.Request().Header.Get(headerIdempotencyKey)
	result, err := h.orders.PlaceOrder(c.Request().Context(), toPlaceOrderInput(userID, req, key))
	if err != nil {
		return err
	}

	if !result.AlreadyExisted {
		if _, err := h.carts.ClearProvider(c.Request().Context(), userID, req.ProviderID); err != nil {
			log := logger.Get()
			log.Warn().Err(err).
				Str("order_id", result.OrderID).
				Str("provider_id", req.ProviderID).
				Msg("failed to clear cart after order placement")
		}
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, toPlaceOrderResponse(result))
}

// Get handles GET /v1/orders/:id with role-based scoping.
//
// @Summary      Get an order by ID
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	role, userID, providerID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	order, err := h.orders.GetOrder(c.Request().Context(), ports.GetOrderInput{
		OrderID:    c.Param("id"),
		Role:       role,
		UserID:     userID,
		ProviderID: providerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// List handles GET /v1/orders. Customers see their own orders, providers
// their restaurant's, admins everything.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Param        from    query     string  false  "Created from (RFC3339)"
// @Param        to      query     string  false  "Created to (RFC3339)"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  listOrdersResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	role, userID, providerID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	status := c.QueryParam("status")
	if status != "" && !domain.ValidOrderStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown order status")
	}

	input := ports.ListOrdersInput{
		Role:       role,
		UserID:     userID,
		ProviderID: providerID,
		Status:     status,
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	}
	if from := c.QueryParam("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid from date")
		}
		input.DateFrom = t
	}
	if to := c.QueryParam("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid to date")
		}
		input.DateTo = t
	}

	result, err := h.orders.ListOrders(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListOrdersResponse(result))
}
