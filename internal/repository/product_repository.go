package repository

import (
	"context"

	"gorm.io/gorm"

	"calorietracker/internal/model"
	"calorietracker/internal/store"
)

// ProductRepository defines product persistence operations.
// Visibility is always scoped: default products plus those owned by userID.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	ListVisible(ctx context.Context, userID uint) ([]model.Product, error)
	FindVisible(ctx context.Context, id, userID uint) (*model.Product, error)
	DeleteOwned(ctx context.Context, id, userID uint) (int64, error)
}

type productRepository struct {
	store *store.Store
}

// NewProductRepository creates a new product repository.
func NewProductRepository(s *store.Store) ProductRepository {
	return &productRepository{store: s}
}

// Create creates a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
}

// ListVisible lists default products and the user's own products ordered by name.
func (r *productRepository) ListVisible(ctx context.Context, userID uint) ([]model.Product, error) {
	products := make([]model.Product, 0)
	if err := r.store.DB(ctx).
		Where("is_default = ? OR user_id = ?", true, userID).
		Order("name").Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindVisible finds a product by ID if the user may see it.
func (r *productRepository) FindVisible(ctx context.Context, id, userID uint) (*model.Product, error) {
	var product model.Product
	if err := r.store.DB(ctx).
		Where("id = ? AND (is_default = ? OR user_id = ?)", id, true, userID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteOwned deletes a non-default product owned by userID and reports how many rows went away.
func (r *productRepository) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	var affected int64
	err := r.store.Write(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ? AND is_default = ?", id, userID, false).Delete(&model.Product{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}
