package service

import (
	"context"
	"fmt"
	"time"

	apperrors "calorietracker/internal/errors"
	"calorietracker/internal/model"
	"calorietracker/internal/store"
)

// MealItem is one meal entry with nutrient values scaled by its quantity.
// Values are not rounded.
type MealItem struct {
	ID          uint    `json:"id"`
	ProductID   *uint   `json:"product_id"`
	Quantity    float64 `json:"quantity"`
	Name        string  `json:"name"`
	PortionSize string  `json:"portion_size"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	Fiber       float64 `json:"fiber"`
}

// MealBuckets groups a day's entries by meal type. Every bucket is non-nil.
type MealBuckets struct {
	Breakfast []MealItem `json:"breakfast"`
	Lunch     []MealItem `json:"lunch"`
	Dinner    []MealItem `json:"dinner"`
	Snack     []MealItem `json:"snack"`
}

func newMealBuckets() MealBuckets {
	return MealBuckets{
		Breakfast: []MealItem{},
		Lunch:     []MealItem{},
		Dinner:    []MealItem{},
		Snack:     []MealItem{},
	}
}

func (b *MealBuckets) add(t model.MealType, item MealItem) {
	switch t {
	case model.MealTypeBreakfast:
		b.Breakfast = append(b.Breakfast, item)
	case model.MealTypeLunch:
		b.Lunch = append(b.Lunch, item)
	case model.MealTypeDinner:
		b.Dinner = append(b.Dinner, item)
	case model.MealTypeSnack:
		b.Snack = append(b.Snack, item)
	}
}

// DailySummary holds rounded totals for one day against the user's goal.
// Remaining is negative once the goal is exceeded.
type DailySummary struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`
	DailyGoal     int     `json:"dailyGoal"`
	Remaining     float64 `json:"remaining"`
}

// DailyReport is the response for one calendar day.
type DailyReport struct {
	Date  string       `json:"date"`
	Meals MealBuckets  `json:"meals"`
	Stats DailySummary `json:"stats"`
}

// DayTotals is one row of the weekly report.
type DayTotals struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// MonthDay is one row of the monthly report. Days without entries are omitted.
type MonthDay struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`
	MealCount     int64   `json:"mealCount"`
}

// AggregationService computes per-user nutrient totals over days, weeks and months.
type AggregationService interface {
	Daily(ctx context.Context, userID uint, date string) (*DailyReport, error)
	Weekly(ctx context.Context, userID uint) ([]DayTotals, error)
	Monthly(ctx context.Context, userID uint, month, year int) ([]MonthDay, error)
}

// Entries whose product was deleted join to NULL and contribute zero.
const (
	dailyEntriesSQL = `
		SELECT
			me.id AS id,
			me.meal_type AS meal_type,
			me.quantity AS quantity,
			me.product_id AS product_id,
			COALESCE(p.name, '') AS name,
			COALESCE(p.portion_size, '') AS portion_size,
			COALESCE(p.calories, 0) AS calories,
			COALESCE(p.protein, 0) AS protein,
			COALESCE(p.carbs, 0) AS carbs,
			COALESCE(p.fats, 0) AS fats,
			COALESCE(p.fiber, 0) AS fiber
		FROM meal_entries me
		LEFT JOIN products p ON me.product_id = p.id
		WHERE me.user_id = ? AND me.date = ?
		ORDER BY me.id`

	dailyGoalSQL = `SELECT daily_calorie_goal FROM users WHERE id = ?`

	rangeTotalsSQL = `
		SELECT
			me.date AS date,
			SUM(COALESCE(p.calories, 0) * me.quantity) AS calories,
			SUM(COALESCE(p.protein, 0) * me.quantity) AS protein,
			SUM(COALESCE(p.carbs, 0) * me.quantity) AS carbs,
			SUM(COALESCE(p.fats, 0) * me.quantity) AS fats,
			COUNT(DISTINCT me.id) AS meal_count
		FROM meal_entries me
		LEFT JOIN products p ON me.product_id = p.id
		WHERE me.user_id = ? AND me.date >= ? AND me.date < ?
		GROUP BY me.date
		ORDER BY me.date`
)

type aggregationService struct {
	now         Clock
	dailyStmt   *store.Statement
	goalStmt    *store.Statement
	rangeTotals *store.Statement
}

// NewAggregationService creates a new aggregation service. A nil clock uses time.Now.
func NewAggregationService(s *store.Store, now Clock) AggregationService {
	if now == nil {
		now = time.Now
	}
	return &aggregationService{
		now:         now,
		dailyStmt:   s.Prepare(dailyEntriesSQL),
		goalStmt:    s.Prepare(dailyGoalSQL),
		rangeTotals: s.Prepare(rangeTotalsSQL),
	}
}

// Daily buckets a day's entries by meal type and totals them.
// An empty date means today.
func (s *aggregationService) Daily(ctx context.Context, userID uint, date string) (*DailyReport, error) {
	if date == "" {
		date = today(s.now())
	} else if _, ok := parseDay(date, time.Local); !ok {
		return nil, apperrors.ErrInvalidDate
	}

	goalRow, err := s.goalStmt.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load daily goal: %w", err)
	}
	if goalRow == nil {
		return nil, apperrors.ErrUserNotFound
	}

	rows, err := s.dailyStmt.All(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("load meal entries: %w", err)
	}

	report := &DailyReport{Date: date, Meals: newMealBuckets()}
	var calories, protein, carbs, fats float64
	for _, row := range rows {
		qty := row.Float("quantity")
		item := MealItem{
			ID:          uint(row.Int("id")),
			Quantity:    qty,
			Name:        row.String("name"),
			PortionSize: row.String("portion_size"),
			Calories:    row.Float("calories") * qty,
			Protein:     row.Float("protein") * qty,
			Carbs:       row.Float("carbs") * qty,
			Fats:        row.Float("fats") * qty,
			Fiber:       row.Float("fiber") * qty,
		}
		if row["product_id"] != nil {
			pid := uint(row.Int("product_id"))
			item.ProductID = &pid
		}

		report.Meals.add(model.MealType(row.String("meal_type")), item)
		calories += item.Calories
		protein += item.Protein
		carbs += item.Carbs
		fats += item.Fats
	}

	goal := int(goalRow.Int("daily_calorie_goal"))
	total := round1(calories)
	report.Stats = DailySummary{
		TotalCalories: total,
		TotalProtein:  round1(protein),
		TotalCarbs:    round1(carbs),
		TotalFats:     round1(fats),
		DailyGoal:     goal,
		Remaining:     round1(float64(goal) - total),
	}
	return report, nil
}

// Weekly returns exactly seven rows, today-6 through today, zero-filled.
func (s *aggregationService) Weekly(ctx context.Context, userID uint) ([]DayTotals, error) {
	now := s.now()
	end, _ := parseDay(today(now), now.Location())
	start := end.AddDate(0, 0, -6)

	rows, err := s.rangeTotals.All(ctx, userID, start.Format(model.DateLayout), end.AddDate(0, 0, 1).Format(model.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("load weekly totals: %w", err)
	}

	byDate := make(map[string]store.Row, len(rows))
	for _, row := range rows {
		byDate[row.String("date")] = row
	}

	out := make([]DayTotals, 0, 7)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(model.DateLayout)
		row := byDate[key] // nil row reads as zeros
		out = append(out, DayTotals{
			Date:     key,
			Calories: round1(row.Float("calories")),
			Protein:  round1(row.Float("protein")),
			Carbs:    round1(row.Float("carbs")),
			Fats:     round1(row.Float("fats")),
		})
	}
	return out, nil
}

// Monthly returns one row per day of the month that has entries.
// Zero month or year means the current one.
func (s *aggregationService) Monthly(ctx context.Context, userID uint, month, year int) ([]MonthDay, error) {
	now := s.now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, apperrors.ErrInvalidPeriod
	}

	first := time.Date(year, time.Month(month), 1, 12, 0, 0, 0, now.Location())
	next := first.AddDate(0, 1, 0)

	rows, err := s.rangeTotals.All(ctx, userID, first.Format(model.DateLayout), next.Format(model.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("load monthly totals: %w", err)
	}

	out := make([]MonthDay, 0, len(rows))
	for _, row := range rows {
		out = append(out, MonthDay{
			Date:          row.String("date"),
			TotalCalories: round1(row.Float("calories")),
			TotalProtein:  round1(row.Float("protein")),
			TotalCarbs:    round1(row.Float("carbs")),
			TotalFats:     round1(row.Float("fats")),
			MealCount:     row.Int("meal_count"),
		})
	}
	return out, nil
}
