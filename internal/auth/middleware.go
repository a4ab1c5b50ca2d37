package auth

import (
	"errors"
	"fmt"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/model"
)

// ContextKey is where the verified *Claims are stored on the echo.Context.
const ContextKey = "user"

// Middleware verifies the bearer token on every request.
// A missing token yields 401; a malformed, expired or revoked one yields 403.
func Middleware(jwtService *JWTService, tokenStore TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", apperrors.ErrTokenInvalid, err)
			}
			revoked, _ := tokenStore.IsTokenRevoked(c.Request().Context(), claims.ID)
			if revoked {
				return nil, fmt.Errorf("%w: revoked", apperrors.ErrTokenInvalid)
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, apperrors.ErrTokenInvalid) {
				return newHTTPError(apperrors.ErrTokenInvalid)
			}
			return newHTTPError(apperrors.ErrTokenMissing)
		},
	})
}

// RequireRoles rejects callers whose role is not listed.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return newHTTPError(apperrors.ErrTokenMissing)
			}
			if len(roles) == 0 {
				return next(c)
			}
			for _, r := range roles {
				if claims.Role == r {
					return next(c)
				}
			}
			return newHTTPError(apperrors.ErrForbidden)
		}
	}
}

// ClaimsFromContext returns the verified claims set by Middleware.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok && claims != nil
}

func newHTTPError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "unauthorized", Code: "UNAUTHORIZED"})
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
