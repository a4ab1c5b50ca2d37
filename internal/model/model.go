// Package model defines the persisted entities.
package model

// All returns every persisted model in creation order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Product{},
		&Recipe{},
		&RecipeItem{},
		&MealEntry{},
		&Goal{},
		&Consultation{},
	}
}
