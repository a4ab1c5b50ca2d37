package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"calorietracker/internal/auth"
	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/handler"
	"calorietracker/internal/model"
	"calorietracker/pkg/logger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Meal    *handler.MealHandler
	Stats   *handler.StatsHandler
	User    *handler.UserHandler
	Seed    *handler.SeedHandler
	Health  *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	log *logger.Logger,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	h Handlers,
) {
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler(log)

	e.Use(middleware.RequestID())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw("panic recovered", "error", err, "stack", string(stack))
			return err
		},
	}))
	e.Use(middleware.CORS())
	e.Use(RequestLogger(log))

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/health", h.Health.Health)
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// Secured routes (require JWT authentication)
	secured := api.Group("", auth.Middleware(jwtService, tokenStore))

	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/auth/me", h.Auth.Me)
	secured.PUT("/auth/profile", h.Auth.UpdateProfile)

	secured.GET("/products", h.Product.List)
	secured.POST("/products", h.Product.Create)
	secured.DELETE("/products/:id", h.Product.Delete)

	secured.GET("/meals", h.Meal.ByDate)
	secured.POST("/meals", h.Meal.Add)
	secured.DELETE("/meals/:id", h.Meal.Delete)

	secured.GET("/stats/weekly", h.Stats.Weekly)
	secured.GET("/stats/monthly", h.Stats.Monthly)

	staff := secured.Group("/users", auth.RequireRoles(model.RoleAdmin, model.RoleDietitian))
	staff.GET("", h.User.ListUsers)
	staff.GET("/:id", h.User.GetUser)

	admin := secured.Group("/admin", auth.RequireRoles(model.RoleAdmin))
	admin.POST("/seed", h.Seed.Seed)
}

// RequestLogger logs one line per request through zap.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				log.Warnw("request failed", append(fields, "error", v.Error)...)
				return nil
			}
			log.Infow("request", fields...)
			return nil
		},
	})
}

// ErrorHandler renders every error as {error, code}. Causes of 5xx responses are
// logged and never sent to the client.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := apperrors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			switch msg := he.Message.(type) {
			case apperrors.ErrorResponse:
				body = msg
			case string:
				body = apperrors.ErrorResponse{Error: msg, Code: codeForStatus(status)}
			default:
				body = apperrors.ErrorResponse{Error: http.StatusText(status), Code: codeForStatus(status)}
			}
			if status == http.StatusNotFound && errors.Is(err, echo.ErrNotFound) {
				body = apperrors.ErrorResponse{Error: "route not found", Code: "NOT_FOUND"}
			}
		}

		if status >= http.StatusInternalServerError {
			cause := err
			if he != nil && he.Internal != nil {
				cause = he.Internal
			}
			log.Errorw("request error", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", cause)
			if status == http.StatusInternalServerError {
				body = apperrors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}
			}
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Errorw("write error response", "error", err)
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		return "INTERNAL_ERROR"
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the validator installed on the router.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
