package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrProductNotFound is returned when a product does not exist or is not visible to the caller.
	ErrProductNotFound = errors.New("product not found")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD format.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
	// ErrInvalidPeriod is returned when a month or year is out of range.
	ErrInvalidPeriod = errors.New("invalid month or year")
	// ErrInvalidMealType is returned for a meal type outside breakfast, lunch, dinner and snack.
	ErrInvalidMealType = errors.New("meal_type must be one of breakfast, lunch, dinner, snack")
	// ErrInvalidQuantity is returned for a non-positive meal quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidRole is returned when a registration asks for a role it may not self-assign.
	ErrInvalidRole = errors.New("role must be user or dietitian")
	// ErrForbidden is returned when the caller's role may not access a resource.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrTokenMissing is returned when no bearer token was presented.
	ErrTokenMissing = errors.New("token not found")
	// ErrTokenInvalid is returned when a bearer token fails verification or was revoked.
	ErrTokenInvalid = errors.New("invalid token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are matched with errors.Is.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, ErrProductNotFound.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusBadRequest, ErrUserAlreadyExists.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidDate):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidDate.Error(), "INVALID_DATE")
	case errors.Is(err, ErrInvalidPeriod):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidPeriod.Error(), "INVALID_PERIOD")
	case errors.Is(err, ErrInvalidMealType):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidMealType.Error(), "INVALID_MEAL_TYPE")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidQuantity.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidRole.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrTokenMissing):
		return NewHTTPError(http.StatusUnauthorized, ErrTokenMissing.Error(), "TOKEN_MISSING")
	case errors.Is(err, ErrTokenInvalid):
		return NewHTTPError(http.StatusForbidden, ErrTokenInvalid.Error(), "TOKEN_INVALID")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
