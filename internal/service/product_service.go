package service

import (
	"context"
	"fmt"
	"strings"

	"calorietracker/internal/model"
	"calorietracker/internal/repository"
)

// NewProduct holds the fields of a user-created product. Omitted macros are zero.
type NewProduct struct {
	Name        string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fats        float64
	Fiber       float64
	PortionSize string
}

// ProductService manages the product catalog as seen by one user.
type ProductService interface {
	List(ctx context.Context, userID uint) ([]model.Product, error)
	Create(ctx context.Context, userID uint, p NewProduct) (*model.Product, error)
	Delete(ctx context.Context, userID, productID uint) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// List returns default products and the user's own, ordered by name.
func (s *productService) List(ctx context.Context, userID uint) ([]model.Product, error) {
	products, err := s.repo.ListVisible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Create adds a product owned by userID.
func (s *productService) Create(ctx context.Context, userID uint, p NewProduct) (*model.Product, error) {
	portion := strings.TrimSpace(p.PortionSize)
	if portion == "" {
		portion = model.DefaultPortionSize
	}

	owner := userID
	product := &model.Product{
		UserID:      &owner,
		Name:        strings.TrimSpace(p.Name),
		Calories:    p.Calories,
		Protein:     p.Protein,
		Carbs:       p.Carbs,
		Fats:        p.Fats,
		Fiber:       p.Fiber,
		PortionSize: portion,
		IsDefault:   false,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Delete removes a product the user owns. Default products and products
// owned by someone else are left untouched without error.
func (s *productService) Delete(ctx context.Context, userID, productID uint) error {
	if _, err := s.repo.DeleteOwned(ctx, productID, userID); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
