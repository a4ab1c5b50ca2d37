package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/seed"
	"calorietracker/internal/store"
	"calorietracker/pkg/logger"
)

// SeedHandler handles seed data endpoints.
type SeedHandler struct {
	store *store.Store
	log   *logger.Logger
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(s *store.Store, log *logger.Logger) *SeedHandler {
	return &SeedHandler{store: s, log: log}
}

// SeedResponse represents the seed response.
type SeedResponse struct {
	Message  string `json:"message"`
	Seeded   bool   `json:"seeded"`
	Users    int    `json:"users"`
	Products int    `json:"products"`
}

// Seed godoc
// @Summary Load demonstration data
// @Description Inserts demo users and the default catalog when the database has no users. Otherwise does nothing.
// @Tags seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SeedResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	res, err := seed.Run(c.Request().Context(), h.store, h.log, nil)
	if err != nil {
		return fromDomain(err)
	}

	msg := "database already contains data"
	if res.Seeded {
		msg = "demonstration data seeded"
	}
	return c.JSON(http.StatusOK, SeedResponse{
		Message:  msg,
		Seeded:   res.Seeded,
		Users:    res.Users,
		Products: res.Products,
	})
}
