package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/model"
	"calorietracker/internal/service"
)

// MealHandler handles meal entry endpoints.
type MealHandler struct {
	meals service.MealService
	stats service.AggregationService
}

// NewMealHandler creates a new meal handler.
func NewMealHandler(meals service.MealService, stats service.AggregationService) *MealHandler {
	return &MealHandler{meals: meals, stats: stats}
}

// AddMealRequest represents a meal entry. Quantity defaults to 1 and date to today.
type AddMealRequest struct {
	ProductID uint           `json:"product_id" validate:"required"`
	MealType  model.MealType `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	Quantity  float64        `json:"quantity" validate:"omitempty,gt=0"`
	Date      string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// AddMealResponse is returned after a meal entry is recorded.
type AddMealResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// ByDate godoc
// @Summary Meals and totals for a day
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param date query string false "Day as YYYY-MM-DD, default today"
// @Success 200 {object} service.DailyReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /meals [get]
func (h *MealHandler) ByDate(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	report, err := h.stats.Daily(c.Request().Context(), userID, c.QueryParam("date"))
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(http.StatusOK, report)
}

// Add godoc
// @Summary Record a meal entry
// @Tags meals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddMealRequest true "Meal entry"
// @Success 201 {object} AddMealResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /meals [post]
func (h *MealHandler) Add(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req AddMealRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entry, err := h.meals.Add(c.Request().Context(), userID, service.NewMeal{
		ProductID: req.ProductID,
		MealType:  req.MealType,
		Quantity:  req.Quantity,
		Date:      req.Date,
	})
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(http.StatusCreated, AddMealResponse{ID: entry.ID, Message: "meal added"})
}

// Delete godoc
// @Summary Delete an own meal entry
// @Description Succeeds without effect for entries of other users.
// @Tags meals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Meal entry ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /meals/{id} [delete]
func (h *MealHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.meals.Delete(c.Request().Context(), userID, id); err != nil {
		return fromDomain(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "meal deleted"})
}
