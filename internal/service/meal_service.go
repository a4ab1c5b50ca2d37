package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/model"
	"calorietracker/internal/repository"
)

// NewMeal holds the fields of a meal entry to record.
// Zero Quantity means one portion; empty Date means today.
type NewMeal struct {
	ProductID uint
	MealType  model.MealType
	Quantity  float64
	Date      string
}

// MealService records and removes meal entries.
type MealService interface {
	Add(ctx context.Context, userID uint, m NewMeal) (*model.MealEntry, error)
	Delete(ctx context.Context, userID, entryID uint) error
}

type mealService struct {
	meals    repository.MealRepository
	products repository.ProductRepository
	now      Clock
}

// NewMealService creates a new meal service. A nil clock uses time.Now.
func NewMealService(meals repository.MealRepository, products repository.ProductRepository, now Clock) MealService {
	if now == nil {
		now = time.Now
	}
	return &mealService{meals: meals, products: products, now: now}
}

// Add records a meal entry for a product visible to the user.
func (s *mealService) Add(ctx context.Context, userID uint, m NewMeal) (*model.MealEntry, error) {
	if !model.ValidMealType(m.MealType) {
		return nil, apperrors.ErrInvalidMealType
	}

	qty := m.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	date := m.Date
	if date == "" {
		date = today(s.now())
	} else if _, ok := parseDay(date, time.Local); !ok {
		return nil, apperrors.ErrInvalidDate
	}

	if _, err := s.products.FindVisible(ctx, m.ProductID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	productID := m.ProductID
	entry := &model.MealEntry{
		UserID:    userID,
		ProductID: &productID,
		MealType:  m.MealType,
		Quantity:  qty,
		Date:      date,
	}
	if err := s.meals.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create meal entry: %w", err)
	}
	return entry, nil
}

// Delete removes an entry the user owns. Entries of other users are left untouched without error.
func (s *mealService) Delete(ctx context.Context, userID, entryID uint) error {
	if _, err := s.meals.DeleteOwned(ctx, entryID, userID); err != nil {
		return fmt.Errorf("delete meal entry: %w", err)
	}
	return nil
}
