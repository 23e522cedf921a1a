package model

import (
	"time"
)

// DailyGoal holds the nutrient targets for one (user, date). At most one
// row exists per pair, enforced by a unique index.
type DailyGoal struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	GoalDate  string    `db:"goal_date" json:"date"` // YYYY-MM-DD
	Calories  float64   `db:"calories" json:"calories"`
	Protein   float64   `db:"protein" json:"protein"`
	Carbs     float64   `db:"carbs" json:"carbs"`
	Fats      float64   `db:"fats" json:"fats"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
