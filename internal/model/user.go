package model

import "time"

// Role is the authorization role of a user.
type Role string

const (
	RoleUser      Role = "user"
	RoleDietitian Role = "dietitian"
	RoleAdmin     Role = "admin"
)

// DefaultDailyCalorieGoal applies when a user has not configured a goal.
const DefaultDailyCalorieGoal = 2000

// User represents an account owning products and meal entries.
type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Username         string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string    `json:"-" gorm:"column:password;size:255;not null"` // Never expose in JSON
	Role             Role      `json:"role" gorm:"size:20;not null;default:'user';check:chk_users_role,role IN ('user','dietitian','admin')"`
	DailyCalorieGoal int       `json:"daily_calorie_goal" gorm:"not null;default:2000"`
	Age              *int      `json:"age"`
	Weight           *float64  `json:"weight"`
	Height           *float64  `json:"height"`
	Gender           *string   `json:"gender" gorm:"size:20"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Summary returns the public identity fields embedded in tokens.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// UserSummary is the identity returned alongside a credential.
type UserSummary struct {
	ID               uint   `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	DailyCalorieGoal int    `json:"daily_calorie_goal,omitempty"`
}

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleDietitian, RoleAdmin:
		return true
	}
	return false
}
