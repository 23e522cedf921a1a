package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/nutrifyhq/nutrify/internal/model"
)

var (
	ErrFoodNotFound = errors.New("food entry not found")
)

const (
	FoodDefaultLimit = 50
	FoodMaxLimit     = 200
)

type FoodRepository interface {
	Create(food *model.TrackedFood) error
	ByID(userID, foodID string) (*model.TrackedFood, error)
	ByUserAndDate(userID, date string) ([]*model.TrackedFood, error)
	Recent(userID string, limit, offset int) ([]*model.TrackedFood, error)
	DayTotals(userID, date string) (*model.DayTotals, error)
	Delete(userID, foodID string) error
}

type foodRepository struct {
	db *sqlx.DB
}

func NewFoodRepository(db *sqlx.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) Create(food *model.TrackedFood) error {
	query := `INSERT INTO tracked_foods (id, user_id, name, quantity, calories, protein, carbs, fats, entry_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		food.ID,
		food.UserID,
		food.Name,
		food.Quantity,
		food.Calories,
		food.Protein,
		food.Carbs,
		food.Fats,
		food.EntryDate,
		food.CreatedAt,
	)

	return err
}

func (r *foodRepository) ByID(userID, foodID string) (*model.TrackedFood, error) {
	food := &model.TrackedFood{}
	query := `SELECT * FROM tracked_foods WHERE id = $1 AND user_id = $2`

	err := r.db.Get(food, query, foodID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrFoodNotFound
	}

	return food, err
}

// ByUserAndDate returns all entries for one calendar day, newest first.
// The date filter always runs in the database over the (user_id,
// entry_date) index, never client-side.
func (r *foodRepository) ByUserAndDate(userID, date string) ([]*model.TrackedFood, error) {
	var foods []*model.TrackedFood
	query := `SELECT * FROM tracked_foods
	          WHERE user_id = $1 AND entry_date = $2
	          ORDER BY created_at DESC`

	err := r.db.Select(&foods, query, userID, date)
	if err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *foodRepository) Recent(userID string, limit, offset int) ([]*model.TrackedFood, error) {
	if limit <= 0 {
		limit = FoodDefaultLimit
	}
	if limit > FoodMaxLimit {
		limit = FoodMaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	var foods []*model.TrackedFood
	query := `SELECT * FROM tracked_foods
	          WHERE user_id = $1
	          ORDER BY entry_date DESC, created_at DESC
	          LIMIT $2 OFFSET $3`

	err := r.db.Select(&foods, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	return foods, nil
}

// DayTotals sums the day's nutrients in SQL, treating absent values as zero.
func (r *foodRepository) DayTotals(userID, date string) (*model.DayTotals, error) {
	totals := &model.DayTotals{}
	query := `SELECT
	              COALESCE(SUM(COALESCE(calories, 0)), 0) AS calories,
	              COALESCE(SUM(COALESCE(protein, 0)), 0) AS protein,
	              COALESCE(SUM(COALESCE(carbs, 0)), 0) AS carbs,
	              COALESCE(SUM(COALESCE(fats, 0)), 0) AS fats
	          FROM tracked_foods
	          WHERE user_id = $1 AND entry_date = $2`

	err := r.db.Get(totals, query, userID, date)
	if err != nil {
		return nil, err
	}

	return totals, nil
}

func (r *foodRepository) Delete(userID, foodID string) error {
	query := `DELETE FROM tracked_foods WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, foodID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrFoodNotFound
	}

	return nil
}
