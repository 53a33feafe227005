package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewHandler handles meal reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List handles GET /v1/meals/:id/reviews.
//
// @Summary      List reviews for a meal
// @Tags         reviews
// @Produce      json
// @Param        id   path     string  true  "Meal ID"
// @Success      200  {array}  domain.Review
// @Router       /v1/meals/{id}/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.ListReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create handles POST /v1/meals/:id/reviews. Only customers with a delivered
// order containing the meal may review it.
//
// @Summary      Review a meal
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Meal ID"
// @Param        body  body      createReviewRequest  true  "Rating and comment"
// @Success      201   {object}  domain.Review
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/meals/{id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	_, userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	review, err := h.service.CreateReview(c.Request().Context(), ports.CreateReviewInput{
		MealID:  c.Param("id"),
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}
