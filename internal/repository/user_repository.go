package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/model"
	"calorietracker/internal/store"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	store *store.Store
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(s *store.Store) UserRepository {
	return &userRepository{store: s}
}

// Create inserts user unless the username or email is already taken,
// in which case ErrUserAlreadyExists is returned.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.store.Write(ctx, func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.User{}).
			Where("email = ? OR username = ?", user.Email, user.Username).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperrors.ErrUserAlreadyExists
		}
		return tx.Create(user).Error
	})
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Save(user).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.store.DB(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.store.DB(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.store.DB(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
