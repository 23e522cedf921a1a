package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/nutrifyhq/nutrify/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Upsert(goal *model.DailyGoal) error
	ByUserAndDate(userID, date string) (*model.DailyGoal, error)
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

// Upsert writes the goal for (user, date) as a single conditional insert.
// The unique index on (user_id, goal_date) makes concurrent writers
// converge on one row instead of racing a read-then-write sequence.
func (r *goalRepository) Upsert(goal *model.DailyGoal) error {
	query := `INSERT INTO daily_goals (id, user_id, goal_date, calories, protein, carbs, fats, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          ON CONFLICT (user_id, goal_date) DO UPDATE SET
	              calories = excluded.calories,
	              protein = excluded.protein,
	              carbs = excluded.carbs,
	              fats = excluded.fats,
	              updated_at = excluded.updated_at`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.GoalDate,
		goal.Calories,
		goal.Protein,
		goal.Carbs,
		goal.Fats,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByUserAndDate(userID, date string) (*model.DailyGoal, error) {
	goal := &model.DailyGoal{}
	query := `SELECT * FROM daily_goals WHERE user_id = $1 AND goal_date = $2`

	err := r.db.Get(goal, query, userID, date)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}
