package model

import (
	"time"
)

// TrackedFood is a single logged food entry. Entries are inserted and
// deleted, never updated in place.
type TrackedFood struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Quantity  float64   `db:"quantity" json:"quantity"`
	Calories  *float64  `db:"calories" json:"calories,omitempty"`
	Protein   *float64  `db:"protein" json:"protein,omitempty"`
	Carbs     *float64  `db:"carbs" json:"carbs,omitempty"`
	Fats      *float64  `db:"fats" json:"fats,omitempty"`
	EntryDate string    `db:"entry_date" json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// DayTotals are the summed nutrients for one (user, date), with absent
// values counted as zero.
type DayTotals struct {
	Calories float64 `db:"calories" json:"calories"`
	Protein  float64 `db:"protein" json:"protein"`
	Carbs    float64 `db:"carbs" json:"carbs"`
	Fats     float64 `db:"fats" json:"fats"`
}
