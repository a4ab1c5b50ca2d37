package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"calorietracker/internal/db"
	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/model"
	"calorietracker/internal/store"
)

func createTestStore(t *testing.T) *store.Store {
	t.Helper()
	gormDB, err := db.Open(db.DriverSQLite, filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	s, err := store.New(gormDB)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func createUser(t *testing.T, repo UserRepository, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Email: username + "@x.com", PasswordHash: "hash", Role: model.RoleUser, DailyCalorieGoal: 2000}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(createTestStore(t))
	ctx := context.Background()

	u := createUser(t, repo, "alice")
	assert.NotZero(t, u.ID)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byEmail, err := repo.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	repo := NewUserRepository(createTestStore(t))
	ctx := context.Background()
	createUser(t, repo, "alice")

	err := repo.Create(ctx, &model.User{Username: "alice", Email: "other@x.com", PasswordHash: "h", Role: model.RoleUser})
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)

	err = repo.Create(ctx, &model.User{Username: "other", Email: "alice@x.com", PasswordHash: "h", Role: model.RoleUser})
	assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(createTestStore(t))
	ctx := context.Background()
	u := createUser(t, repo, "alice")

	age := 31
	u.Age = &age
	u.DailyCalorieGoal = 1800
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Age)
	assert.Equal(t, 31, *got.Age)
	assert.Equal(t, 1800, got.DailyCalorieGoal)
}

func TestProductRepository_Visibility(t *testing.T) {
	s := createTestStore(t)
	users := NewUserRepository(s)
	repo := NewProductRepository(s)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	require.NoError(t, repo.Create(ctx, &model.Product{Name: "Banana", Calories: 89, IsDefault: true, PortionSize: "1 item"}))
	require.NoError(t, repo.Create(ctx, &model.Product{UserID: &alice.ID, Name: "Alice bar", Calories: 200, PortionSize: "1 bar"}))
	require.NoError(t, repo.Create(ctx, &model.Product{UserID: &bob.ID, Name: "Bob shake", Calories: 300, PortionSize: "1 cup"}))

	aliceView, err := repo.ListVisible(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceView, 2)
	assert.Equal(t, "Alice bar", aliceView[0].Name)
	assert.Equal(t, "Banana", aliceView[1].Name)

	bobView, err := repo.ListVisible(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobView, 2)
	assert.Equal(t, "Banana", bobView[0].Name)
	assert.Equal(t, "Bob shake", bobView[1].Name)

	_, err = repo.FindVisible(ctx, aliceView[0].ID, bob.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_DeleteOwned(t *testing.T) {
	s := createTestStore(t)
	users := NewUserRepository(s)
	repo := NewProductRepository(s)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")

	shared := &model.Product{Name: "Banana", Calories: 89, IsDefault: true}
	own := &model.Product{UserID: &alice.ID, Name: "Alice bar", Calories: 200}
	require.NoError(t, repo.Create(ctx, shared))
	require.NoError(t, repo.Create(ctx, own))

	n, err := repo.DeleteOwned(ctx, own.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.DeleteOwned(ctx, shared.ID, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.DeleteOwned(ctx, own.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMealRepository_DeleteOwned(t *testing.T) {
	s := createTestStore(t)
	users := NewUserRepository(s)
	repo := NewMealRepository(s)
	ctx := context.Background()

	alice := createUser(t, users, "alice")
	bob := createUser(t, users, "bob")
	productID := uint(1)

	entry := &model.MealEntry{UserID: alice.ID, ProductID: &productID, MealType: model.MealTypeLunch, Quantity: 2, Date: "2024-05-01"}
	require.NoError(t, repo.Create(ctx, entry))
	assert.NotZero(t, entry.ID)

	n, err := repo.DeleteOwned(ctx, entry.ID, bob.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.DeleteOwned(ctx, entry.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
