package model

import "time"

// MealType is the slot of the day a meal entry belongs to.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// MealTypes lists every meal type in display order.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

// DateLayout is the calendar-day format used for meal and goal dates.
const DateLayout = "2006-01-02"

// MealEntry records a quantity of a product eaten on a calendar day.
// Quantity multiplies the product's per-portion values.
type MealEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_meal_entries_user_date,priority:1"`
	ProductID *uint     `json:"product_id"`
	RecipeID  *uint     `json:"recipe_id"`
	MealType  MealType  `json:"meal_type" gorm:"size:20;not null;check:chk_meal_entries_type,meal_type IN ('breakfast','lunch','dinner','snack')"`
	Quantity  float64   `json:"quantity" gorm:"not null;default:1"`
	Date      string    `json:"date" gorm:"size:10;not null;index:idx_meal_entries_user_date,priority:2"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the table name for MealEntry.
func (MealEntry) TableName() string {
	return "meal_entries"
}

// ValidMealType reports whether t is one of the four meal slots.
func ValidMealType(t MealType) bool {
	for _, mt := range MealTypes {
		if mt == t {
			return true
		}
	}
	return false
}
