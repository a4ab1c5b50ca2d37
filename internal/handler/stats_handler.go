package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/errors"
	"calorietracker/internal/service"
)

// StatsHandler serves weekly and monthly rollups.
type StatsHandler struct {
	stats service.AggregationService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(stats service.AggregationService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Weekly godoc
// @Summary Totals for the last seven days
// @Description Exactly seven rows, oldest first; days without entries are zero.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.DayTotals
// @Router /stats/weekly [get]
func (h *StatsHandler) Weekly(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	rows, err := h.stats.Weekly(c.Request().Context(), userID)
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// Monthly godoc
// @Summary Per-day totals for a month
// @Description One row per day that has entries. Month and year default to the current ones.
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param month query int false "Month 1-12"
// @Param year query int false "Year"
// @Success 200 {array} service.MonthDay
// @Failure 400 {object} errors.ErrorResponse
// @Router /stats/monthly [get]
func (h *StatsHandler) Monthly(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var month, year int
	if err := echo.QueryParamsBinder(c).
		Int("month", &month).
		Int("year", &year).
		BindError(); err != nil {
		return fromDomain(errors.ErrInvalidPeriod)
	}

	rows, err := h.stats.Monthly(c.Request().Context(), userID, month, year)
	if err != nil {
		return fromDomain(err)
	}
	return c.JSON(http.StatusOK, rows)
}
