package model

import "time"

// Recipe groups products into a named dish.
type Recipe struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	UserID      uint         `json:"user_id" gorm:"not null;index"`
	Name        string       `json:"name" gorm:"size:255;not null"`
	Description string       `json:"description" gorm:"type:text"`
	CreatedAt   time.Time    `json:"created_at"`
	Items       []RecipeItem `json:"items,omitempty" gorm:"foreignKey:RecipeID"`
}

// RecipeItem is one ingredient line of a recipe.
type RecipeItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	RecipeID  uint    `json:"recipe_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Quantity  float64 `json:"quantity" gorm:"not null"`
}
