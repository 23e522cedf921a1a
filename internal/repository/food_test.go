package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrifyhq/nutrify/internal/model"
)

func floatPtr(v float64) *float64 {
	return &v
}

func newFood(userID, name, date string, calories *float64, createdAt time.Time) *model.TrackedFood {
	return &model.TrackedFood{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Quantity:  100,
		Calories:  calories,
		EntryDate: date,
		CreatedAt: createdAt,
	}
}

func TestFoodRepository_ByUserAndDate(t *testing.T) {
	database := newTestDB(t)
	repo := NewFoodRepository(database)
	user := newTestUser(t, database, "ext_food")

	now := time.Now()
	require.NoError(t, repo.Create(newFood(user.ID, "banana", "2026-08-28", floatPtr(100), now.Add(-2*time.Minute))))
	require.NoError(t, repo.Create(newFood(user.ID, "oats", "2026-08-28", floatPtr(350), now.Add(-1*time.Minute))))
	require.NoError(t, repo.Create(newFood(user.ID, "pizza", "2026-08-27", floatPtr(800), now)))

	foods, err := repo.ByUserAndDate(user.ID, "2026-08-28")
	require.NoError(t, err)
	require.Len(t, foods, 2)
	// Newest first
	assert.Equal(t, "oats", foods[0].Name)
	assert.Equal(t, "banana", foods[1].Name)
}

func TestFoodRepository_DayTotalsTreatsAbsentAsZero(t *testing.T) {
	database := newTestDB(t)
	repo := NewFoodRepository(database)
	user := newTestUser(t, database, "ext_totals")

	now := time.Now()
	first := newFood(user.ID, "chicken", "2026-08-28", floatPtr(300), now)
	first.Protein = floatPtr(40)
	require.NoError(t, repo.Create(first))

	// No nutrients at all
	require.NoError(t, repo.Create(newFood(user.ID, "water", "2026-08-28", nil, now)))

	totals, err := repo.DayTotals(user.ID, "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, 300.0, totals.Calories)
	assert.Equal(t, 40.0, totals.Protein)
	assert.Equal(t, 0.0, totals.Carbs)
	assert.Equal(t, 0.0, totals.Fats)
}

func TestFoodRepository_DayTotalsEmptyDay(t *testing.T) {
	database := newTestDB(t)
	repo := NewFoodRepository(database)

	totals, err := repo.DayTotals("nobody", "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, 0.0, totals.Calories)
}

func TestFoodRepository_RecentPaging(t *testing.T) {
	database := newTestDB(t)
	repo := NewFoodRepository(database)
	user := newTestUser(t, database, "ext_paging")

	now := time.Now()
	for i := 0; i < 5; i++ {
		food := newFood(user.ID, fmt.Sprintf("meal-%d", i), "2026-08-28", nil, now.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.Create(food))
	}

	page, err := repo.Recent(user.ID, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "meal-4", page[0].Name)

	next, err := repo.Recent(user.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, "meal-2", next[0].Name)

	// Zero limit falls back to the default instead of returning nothing.
	all, err := repo.Recent(user.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestFoodRepository_DeleteChecksOwnership(t *testing.T) {
	database := newTestDB(t)
	repo := NewFoodRepository(database)
	owner := newTestUser(t, database, "ext_owner")
	other := newTestUser(t, database, "ext_other")

	food := newFood(owner.ID, "salad", "2026-08-28", nil, time.Now())
	require.NoError(t, repo.Create(food))

	err := repo.Delete(other.ID, food.ID)
	assert.ErrorIs(t, err, ErrFoodNotFound)

	require.NoError(t, repo.Delete(owner.ID, food.ID))

	_, err = repo.ByID(owner.ID, food.ID)
	assert.ErrorIs(t, err, ErrFoodNotFound)
}
