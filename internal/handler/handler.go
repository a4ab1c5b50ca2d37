package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"calorietracker/internal/auth"
	"calorietracker/internal/errors"
)

// MessageResponse is returned by endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// badRequest builds a 400 with the standard error body.
func badRequest(message, code string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Error: message, Code: code})
}

// bindAndValidate binds the request body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	return nil
}

// fromDomain converts a service error into an HTTP error. Unknown errors keep
// their cause as Internal so the error handler can log it.
func fromDomain(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	he := echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	if httpErr.StatusCode == http.StatusInternalServerError {
		he.Internal = err
	}
	return he
}

// callerID returns the authenticated user's id.
func callerID(c echo.Context) (uint, error) {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return 0, fromDomain(errors.ErrTokenMissing)
	}
	return claims.UserID, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, badRequest("invalid id", "INVALID_ID")
	}
	return uint(id), nil
}
