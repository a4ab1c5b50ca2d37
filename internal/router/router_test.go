package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "calorietracker/internal/errors"
	"calorietracker/pkg/logger"
)

func serve(t *testing.T, h echo.HandlerFunc) (int, apperrors.ErrorResponse) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(logger.NewNop())
	e.GET("/x", h)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    echo.HandlerFunc
		wantStatus int
		wantBody   apperrors.ErrorResponse
	}{
		{
			name: "structured http error",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{Error: "product not found", Code: "PRODUCT_NOT_FOUND"})
			},
			wantStatus: http.StatusNotFound,
			wantBody:   apperrors.ErrorResponse{Error: "product not found", Code: "PRODUCT_NOT_FOUND"},
		},
		{
			name: "string message",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusBadRequest, "bad input")
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   apperrors.ErrorResponse{Error: "bad input", Code: "BAD_REQUEST"},
		},
		{
			name: "plain error is hidden",
			handler: func(c echo.Context) error {
				return errors.New("no such table: users")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   apperrors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"},
		},
		{
			name: "internal cause is hidden",
			handler: func(c echo.Context) error {
				he := echo.NewHTTPError(http.StatusInternalServerError, "disk I/O error")
				return he.SetInternal(errors.New("disk I/O error"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   apperrors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serve(t, tt.handler)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

type sample struct {
	Name  string  `validate:"required"`
	Grams float64 `validate:"gt=0"`
}

func TestValidator(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{Name: "oats", Grams: 40}))
	assert.Error(t, v.Validate(&sample{Grams: 40}))
	assert.Error(t, v.Validate(&sample{Name: "oats"}))
}
