package model

import "time"

// GoalType is the metric a goal tracks.
type GoalType string

const (
	GoalTypeCalorie GoalType = "calorie"
	GoalTypeWeight  GoalType = "weight"
	GoalTypeMacro   GoalType = "macro"
)

// Goal is a user target over a date range.
type Goal struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index:idx_goals_user"`
	GoalType     GoalType  `json:"goal_type" gorm:"size:20;not null;check:chk_goals_type,goal_type IN ('calorie','weight','macro')"`
	TargetValue  float64   `json:"target_value" gorm:"not null"`
	CurrentValue *float64  `json:"current_value"`
	StartDate    string    `json:"start_date" gorm:"size:10;not null"`
	EndDate      *string   `json:"end_date" gorm:"size:10"`
	CreatedAt    time.Time `json:"created_at"`
}
