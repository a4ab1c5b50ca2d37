package repository

import (
	"context"

	"gorm.io/gorm"

	"calorietracker/internal/model"
	"calorietracker/internal/store"
)

// MealRepository defines meal entry persistence operations.
type MealRepository interface {
	Create(ctx context.Context, entry *model.MealEntry) error
	DeleteOwned(ctx context.Context, id, userID uint) (int64, error)
}

type mealRepository struct {
	store *store.Store
}

// NewMealRepository creates a new meal entry repository.
func NewMealRepository(s *store.Store) MealRepository {
	return &mealRepository{store: s}
}

// Create creates a new meal entry.
func (r *mealRepository) Create(ctx context.Context, entry *model.MealEntry) error {
	return r.store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	})
}

// DeleteOwned deletes the entry only when it belongs to userID.
func (r *mealRepository) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	var affected int64
	err := r.store.Write(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.MealEntry{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
