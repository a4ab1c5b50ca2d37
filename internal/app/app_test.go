package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calorietracker/internal/cache"
	"calorietracker/internal/db"
	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/handler"
	"calorietracker/internal/model"
	"calorietracker/internal/seed"
	"calorietracker/internal/service"
	"calorietracker/internal/store"
	"calorietracker/pkg/logger"
)

type testServer struct {
	e     *echo.Echo
	store *store.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gormDB, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	s, err := store.New(gormDB)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	e := New(Deps{
		Store:     s,
		Cache:     cache.New("", "", 0),
		Logger:    logger.NewNop(),
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
	return &testServer{e: e, store: s}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *testServer) register(t *testing.T, username, email string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username, "email": email, "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[handler.AuthResponse](t, rec).Token
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[handler.AuthResponse](t, rec).Token
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "alice", "a@x.com")

	rec := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "pw123456"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[handler.AuthResponse](t, rec)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, model.RoleUser, resp.User.Role)
	assert.Equal(t, 2000, resp.User.DailyCalorieGoal)

	rec = s.do(t, http.MethodGet, "/api/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Equal(t, "a@x.com", decode[model.User](t, rec).Email)
}

func TestRegisterErrors(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "alice", "a@x.com")

	rec := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "alice2", "email": "a@x.com", "password": "pw123456",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decode[apperrors.ErrorResponse](t, rec).Code)

	rec = s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "bob", "email": "b@x.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[apperrors.ErrorResponse](t, rec).Code)

	rec = s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "root", "email": "r@x.com", "password": "pw123456", "role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[apperrors.ErrorResponse](t, rec).Code)
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_MISSING", decode[apperrors.ErrorResponse](t, rec).Code)

	rec = s.do(t, http.MethodGet, "/api/products", "not-a-jwt", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decode[apperrors.ErrorResponse](t, rec).Code)
}

func TestProductAndMealScenario(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice", "a@x.com")

	rec := s.do(t, http.MethodPost, "/api/products", token, map[string]interface{}{
		"name": "Test", "calories": 100, "protein": 10, "carbs": 10, "fats": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	product := decode[model.Product](t, rec)
	assert.Equal(t, model.DefaultPortionSize, product.PortionSize)

	rec = s.do(t, http.MethodGet, "/api/products", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode[[]model.Product](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)
	assert.Equal(t, product.Calories, products[0].Calories)
	assert.Equal(t, product.Protein, products[0].Protein)

	rec = s.do(t, http.MethodPost, "/api/meals", token, map[string]interface{}{
		"product_id": product.ID, "meal_type": "lunch", "quantity": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	added := decode[handler.AddMealResponse](t, rec)
	assert.NotZero(t, added.ID)

	today := time.Now().Format(model.DateLayout)
	rec = s.do(t, http.MethodGet, "/api/meals?date="+today, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[service.DailyReport](t, rec)
	require.Len(t, report.Meals.Lunch, 1)
	assert.Equal(t, 200.0, report.Meals.Lunch[0].Calories)
	assert.Equal(t, 20.0, report.Meals.Lunch[0].Protein)
	assert.Equal(t, 200.0, report.Stats.TotalCalories)
	assert.Equal(t, 1800.0, report.Stats.Remaining)
	assert.Contains(t, rec.Body.String(), `"totalCalories"`)
	assert.Contains(t, rec.Body.String(), `"breakfast":[]`)

	rec = s.do(t, http.MethodGet, "/api/stats/weekly", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	weekly := decode[[]service.DayTotals](t, rec)
	require.Len(t, weekly, 7)
	assert.Equal(t, today, weekly[6].Date)
	assert.Equal(t, 200.0, weekly[6].Calories)

	rec = s.do(t, http.MethodGet, "/api/stats/monthly", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	monthly := decode[[]service.MonthDay](t, rec)
	require.Len(t, monthly, 1)
	assert.Equal(t, int64(1), monthly[0].MealCount)

	rec = s.do(t, http.MethodDelete, "/api/meals/"+strconv.Itoa(int(added.ID)), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/meals", token, nil)
	assert.Empty(t, decode[service.DailyReport](t, rec).Meals.Lunch)
}

func TestMealValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice", "a@x.com")

	tests := []struct {
		name     string
		body     map[string]interface{}
		wantCode int
	}{
		{"missing product", map[string]interface{}{"meal_type": "lunch"}, http.StatusBadRequest},
		{"bad meal type", map[string]interface{}{"product_id": 1, "meal_type": "brunch"}, http.StatusBadRequest},
		{"bad date", map[string]interface{}{"product_id": 1, "meal_type": "lunch", "date": "03/15/2024"}, http.StatusBadRequest},
		{"negative quantity", map[string]interface{}{"product_id": 1, "meal_type": "lunch", "quantity": -1}, http.StatusBadRequest},
		{"unknown product", map[string]interface{}{"product_id": 999, "meal_type": "lunch"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/meals", token, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}

	rec := s.do(t, http.MethodGet, "/api/meals?date=yesterday", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/stats/monthly?month=13", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/stats/monthly?month=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOwnershipScoping(t *testing.T) {
	s := newTestServer(t)
	_, err := seed.Run(context.Background(), s.store, logger.NewNop(), nil)
	require.NoError(t, err)

	alice := s.register(t, "alice", "a@x.com")
	bob := s.register(t, "bob", "b@x.com")

	// Default products are visible to everyone.
	for _, token := range []string{alice, bob} {
		rec := s.do(t, http.MethodGet, "/api/products", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]model.Product](t, rec), 55)
	}

	rec := s.do(t, http.MethodPost, "/api/products", alice, map[string]interface{}{"name": "Alice bar", "calories": 250})
	require.Equal(t, http.StatusCreated, rec.Code)
	own := decode[model.Product](t, rec)

	rec = s.do(t, http.MethodGet, "/api/products", bob, nil)
	assert.Len(t, decode[[]model.Product](t, rec), 55)

	// Bob cannot log a meal against Alice's product, or delete it.
	rec = s.do(t, http.MethodPost, "/api/meals", bob, map[string]interface{}{"product_id": own.ID, "meal_type": "snack"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodDelete, "/api/products/"+strconv.Itoa(int(own.ID)), bob, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/meals", alice, map[string]interface{}{"product_id": own.ID, "meal_type": "snack"})
	require.Equal(t, http.StatusCreated, rec.Code)
	entry := decode[handler.AddMealResponse](t, rec)

	// Bob deleting Alice's entry is a silent no-op.
	rec = s.do(t, http.MethodDelete, "/api/meals/"+strconv.Itoa(int(entry.ID)), bob, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/meals", alice, nil)
	report := decode[service.DailyReport](t, rec)
	require.Len(t, report.Meals.Snack, 1)
	assert.Equal(t, 250.0, report.Stats.TotalCalories)

	// Default products cannot be deleted.
	rec = s.do(t, http.MethodDelete, "/api/products/1", alice, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/products", alice, nil)
	assert.Len(t, decode[[]model.Product](t, rec), 56)
}

func TestProfileUpdate(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice", "a@x.com")

	rec := s.do(t, http.MethodPut, "/api/auth/profile", token, map[string]interface{}{"daily_calorie_goal": 1800, "weight": 61.5})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	user := decode[model.User](t, rec)
	assert.Equal(t, 1800, user.DailyCalorieGoal)
	require.NotNil(t, user.Weight)
	assert.Equal(t, 61.5, *user.Weight)

	rec = s.do(t, http.MethodGet, "/api/meals", token, nil)
	assert.Equal(t, 1800, decode[service.DailyReport](t, rec).Stats.DailyGoal)

	rec = s.do(t, http.MethodPut, "/api/auth/profile", token, map[string]interface{}{"daily_calorie_goal": -5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStaffRoutes(t *testing.T) {
	s := newTestServer(t)
	_, err := seed.Run(context.Background(), s.store, logger.NewNop(), nil)
	require.NoError(t, err)

	user := s.login(t, "user1@example.com", seed.DemoPassword)
	dietitian := s.login(t, "dietitian1@example.com", seed.DemoPassword)
	admin := s.login(t, "admin@example.com", seed.DemoPassword)

	rec := s.do(t, http.MethodGet, "/api/users", user, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode[apperrors.ErrorResponse](t, rec).Code)

	rec = s.do(t, http.MethodGet, "/api/users", dietitian, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.User](t, rec), 4)

	rec = s.do(t, http.MethodGet, "/api/users/2", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user2", decode[model.User](t, rec).Username)

	rec = s.do(t, http.MethodGet, "/api/users/99", admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/admin/seed", dietitian, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/admin/seed", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[handler.SeedResponse](t, rec).Seeded)

	// Seeded meals for user1 are today's chicken breakfast and salmon lunch.
	rec = s.do(t, http.MethodGet, "/api/meals", user, nil)
	report := decode[service.DailyReport](t, rec)
	require.Len(t, report.Meals.Breakfast, 1)
	assert.Equal(t, 330.0, report.Meals.Breakfast[0].Calories)
	require.Len(t, report.Meals.Lunch, 1)
	assert.Equal(t, 312.0, report.Meals.Lunch[0].Calories)
	assert.Equal(t, 642.0, report.Stats.TotalCalories)
	assert.Equal(t, 1358.0, report.Stats.Remaining)
}

func TestLogoutWithoutRedisKeepsTokenUsable(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice", "a@x.com")

	rec := s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthAndNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[handler.HealthResponse](t, rec)
	assert.Equal(t, "OK", health.Status)
	_, err := time.Parse(time.RFC3339Nano, health.Timestamp)
	assert.NoError(t, err)

	rec = s.do(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apperrors.ErrorResponse{Error: "route not found", Code: "NOT_FOUND"}, decode[apperrors.ErrorResponse](t, rec))
}
