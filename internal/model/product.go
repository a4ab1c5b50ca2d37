package model

import "time"

// DefaultPortionSize is the portion label used when none is given.
const DefaultPortionSize = "100g"

// Product is a catalog entry. Nutrient values are per portion.
// Default products have no owner and are visible to every user.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      *uint     `json:"user_id" gorm:"index:idx_products_user"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Calories    float64   `json:"calories" gorm:"not null"`
	Protein     float64   `json:"protein" gorm:"not null;default:0"`
	Carbs       float64   `json:"carbs" gorm:"not null;default:0"`
	Fats        float64   `json:"fats" gorm:"not null;default:0"`
	Fiber       float64   `json:"fiber" gorm:"not null;default:0"`
	PortionSize string    `json:"portion_size" gorm:"size:50;not null;default:'100g'"`
	IsDefault   bool      `json:"is_default" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"created_at"`
}
