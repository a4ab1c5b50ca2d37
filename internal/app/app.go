// Package app assembles repositories, services and handlers into an Echo server.
package app

import (
	"time"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/auth"
	"calorietracker/internal/cache"
	"calorietracker/internal/handler"
	"calorietracker/internal/repository"
	"calorietracker/internal/router"
	"calorietracker/internal/service"
	"calorietracker/internal/store"
	"calorietracker/pkg/logger"
)

// Deps are the long-lived resources the server is built from.
type Deps struct {
	Store     *store.Store
	Cache     *cache.Client
	Logger    *logger.Logger
	JWTSecret string
	TokenTTL  time.Duration
	// Clock pins "today" for meal and stats defaults. Nil uses time.Now.
	Clock service.Clock
}

// New builds the Echo instance with every route registered.
func New(d Deps) *echo.Echo {
	e := echo.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(d.Store)
	productRepo := repository.NewProductRepository(d.Store)
	mealRepo := repository.NewMealRepository(d.Store)

	// Initialize auth components
	jwtService := auth.NewJWTService(d.JWTSecret, d.TokenTTL)
	tokenStore := auth.NewTokenStore(d.Cache)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, d.Cache)
	productService := service.NewProductService(productRepo)
	mealService := service.NewMealService(mealRepo, productRepo, d.Clock)
	aggregationService := service.NewAggregationService(d.Store, d.Clock)

	router.Register(e, d.Logger, jwtService, tokenStore, router.Handlers{
		Auth:    handler.NewAuthHandler(authService, userService),
		Product: handler.NewProductHandler(productService),
		Meal:    handler.NewMealHandler(mealService, aggregationService),
		Stats:   handler.NewStatsHandler(aggregationService),
		User:    handler.NewUserHandler(userService),
		Seed:    handler.NewSeedHandler(d.Store, d.Logger),
		Health:  handler.NewHealthHandler(d.Store),
	})
	return e
}
