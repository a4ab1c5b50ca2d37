// Package seed loads demonstration accounts and the default product catalog
// into an empty database.
package seed

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"calorietracker/internal/model"
	"calorietracker/internal/store"
	"calorietracker/pkg/logger"
)

// DemoPassword is the password shared by every seeded account.
const DemoPassword = "password123"

const bcryptCost = 10

// Result reports what a seed run inserted.
type Result struct {
	Seeded   bool
	Users    int
	Products int
}

// Run populates the store when it holds no users. Any existing user makes it a no-op.
// Everything is inserted in one transaction, so a failure leaves the store empty.
// now supplies the date of the sample meals and goal; nil uses time.Now.
func Run(ctx context.Context, s *store.Store, log *logger.Logger, now func() time.Time) (Result, error) {
	if now == nil {
		now = time.Now
	}

	row, err := s.Prepare("SELECT COUNT(*) AS count FROM users").Get(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count users: %w", err)
	}
	if row.Int("count") > 0 {
		log.Infow("database already contains data, skipping seed", "users", row.Int("count"))
		return Result{}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcryptCost)
	if err != nil {
		return Result{}, fmt.Errorf("hash password: %w", err)
	}

	users := demoUsers(string(hash))
	products := defaultProducts()
	today := now().Format(model.DateLayout)

	err = s.Write(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("insert users: %w", err)
		}
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("insert products: %w", err)
		}

		owner := users[0].ID
		chicken, salmon := products[0].ID, products[1].ID

		recipe := model.Recipe{
			UserID:      owner,
			Name:        "Chicken breast with rice",
			Description: "A simple, healthy recipe",
			Items: []model.RecipeItem{
				{ProductID: chicken, Quantity: 150},
				{ProductID: salmon, Quantity: 100},
			},
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}

		meals := []model.MealEntry{
			{UserID: owner, ProductID: &chicken, MealType: model.MealTypeBreakfast, Quantity: 2, Date: today},
			{UserID: owner, ProductID: &salmon, MealType: model.MealTypeLunch, Quantity: 1.5, Date: today},
		}
		if err := tx.Create(&meals).Error; err != nil {
			return fmt.Errorf("insert meal entries: %w", err)
		}

		current := 1500.0
		goal := model.Goal{
			UserID:       owner,
			GoalType:     model.GoalTypeCalorie,
			TargetValue:  2000,
			CurrentValue: &current,
			StartDate:    today,
		}
		if err := tx.Create(&goal).Error; err != nil {
			return fmt.Errorf("insert goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Infow("seeded demonstration data", "users", len(users), "products", len(products))
	return Result{Seeded: true, Users: len(users), Products: len(products)}, nil
}

func demoUsers(hash string) []model.User {
	ptr := func(v float64) *float64 { return &v }
	age := func(v int) *int { return &v }
	gender := func(v string) *string { return &v }

	return []model.User{
		{
			Username: "user1", Email: "user1@example.com", PasswordHash: hash, Role: model.RoleUser,
			DailyCalorieGoal: 2000, Age: age(25), Weight: ptr(75), Height: ptr(180), Gender: gender("M"),
		},
		{
			Username: "user2", Email: "user2@example.com", PasswordHash: hash, Role: model.RoleUser,
			DailyCalorieGoal: 2200, Age: age(30), Weight: ptr(65), Height: ptr(170), Gender: gender("F"),
		},
		{
			Username: "dietitian1", Email: "dietitian1@example.com", PasswordHash: hash, Role: model.RoleDietitian,
			DailyCalorieGoal: model.DefaultDailyCalorieGoal,
		},
		{
			Username: "admin", Email: "admin@example.com", PasswordHash: hash, Role: model.RoleAdmin,
			DailyCalorieGoal: model.DefaultDailyCalorieGoal,
		},
	}
}

// defaultProducts builds the catalog rows. They have no owner and are visible to everyone.
func defaultProducts() []model.Product {
	out := make([]model.Product, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, model.Product{
			Name:        c.name,
			Calories:    c.calories,
			Protein:     c.protein,
			Carbs:       c.carbs,
			Fats:        c.fats,
			Fiber:       c.fiber,
			PortionSize: c.portion,
			IsDefault:   true,
		})
	}
	return out
}
