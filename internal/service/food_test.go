package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrifyhq/nutrify/internal/model"
	"github.com/nutrifyhq/nutrify/internal/repository"
)

func ptr(v float64) *float64 {
	return &v
}

func TestFoodService_AddValidation(t *testing.T) {
	foods, _, _, _ := newFoodServiceForTest(t)

	_, err := foods.Add("user", "", 100, nil, nil, nil, nil, "2026-08-28")
	assert.Error(t, err)

	_, err = foods.Add("user", "banana", 0, nil, nil, nil, nil, "2026-08-28")
	assert.Error(t, err)

	_, err = foods.Add("user", "banana", 100, ptr(-5), nil, nil, nil, "2026-08-28")
	assert.Error(t, err)

	_, err = foods.Add("user", "banana", 100, nil, nil, nil, nil, "28-08-2026")
	assert.Error(t, err)
}

func TestFoodService_AddWithoutGoalFiresNothing(t *testing.T) {
	foods, _, database, mailer := newFoodServiceForTest(t)
	user := newTestUser(t, database, "ext_nogoal")

	_, err := foods.Add(user.ID, "pizza", 300, ptr(5000), ptr(100), ptr(400), ptr(200), "2026-08-28")
	require.NoError(t, err)

	unread, err := repository.NewNotificationRepository(database).Unread(user.ID)
	require.NoError(t, err)
	assert.Empty(t, unread)
	assert.Empty(t, mailer.goalEmails())
}

func TestFoodService_GoalReachedFiresOnce(t *testing.T) {
	foods, goals, database, mailer := newFoodServiceForTest(t)
	user := newTestUser(t, database, "ext_goal_eval")
	notifications := repository.NewNotificationRepository(database)

	_, err := goals.Set(user.ID, "2026-08-28", 2000, 500, 500, 500)
	require.NoError(t, err)

	// 1200 of 2000: below target, nothing fires.
	_, err = foods.Add(user.ID, "breakfast", 1, ptr(1200), nil, nil, nil, "2026-08-28")
	require.NoError(t, err)

	unread, err := notifications.Unread(user.ID)
	require.NoError(t, err)
	assert.Empty(t, unread)
	assert.Empty(t, mailer.goalEmails())

	// 1200 + 900 = 2100 >= 2000: exactly one calorie notification and one email.
	_, err = foods.Add(user.ID, "lunch", 1, ptr(900), nil, nil, nil, "2026-08-28")
	require.NoError(t, err)

	unread, err = notifications.Unread(user.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, model.NotificationCalories, unread[0].Category)
	assert.Len(t, mailer.goalEmails(), 1)

	// Further entries on the same day must not re-fire the calorie goal.
	_, err = foods.Add(user.ID, "snack", 1, ptr(300), nil, nil, nil, "2026-08-28")
	require.NoError(t, err)

	unread, err = notifications.Unread(user.ID)
	require.NoError(t, err)
	assert.Len(t, unread, 1)
	assert.Len(t, mailer.goalEmails(), 1)
}

func TestFoodService_EachNutrientFiresIndependently(t *testing.T) {
	foods, goals, database, mailer := newFoodServiceForTest(t)
	user := newTestUser(t, database, "ext_multi")
	notifications := repository.NewNotificationRepository(database)

	_, err := goals.Set(user.ID, "2026-08-28", 2000, 100, 9999, 9999)
	require.NoError(t, err)

	// One entry clears both calories and protein at once.
	_, err = foods.Add(user.ID, "feast", 1, ptr(2500), ptr(150), nil, nil, "2026-08-28")
	require.NoError(t, err)

	unread, err := notifications.Unread(user.ID)
	require.NoError(t, err)
	require.Len(t, unread, 2)

	categories := []string{unread[0].Category, unread[1].Category}
	assert.Contains(t, categories, model.NotificationCalories)
	assert.Contains(t, categories, model.NotificationProtein)
	assert.Len(t, mailer.goalEmails(), 2)
}

func TestFoodService_ExactTargetCountsAsReached(t *testing.T) {
	foods, goals, database, _ := newFoodServiceForTest(t)
	user := newTestUser(t, database, "ext_exact")

	_, err := goals.Set(user.ID, "2026-08-28", 2000, 9999, 9999, 9999)
	require.NoError(t, err)

	_, err = foods.Add(user.ID, "dinner", 1, ptr(2000), nil, nil, nil, "2026-08-28")
	require.NoError(t, err)

	unread, err := repository.NewNotificationRepository(database).Unread(user.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, model.NotificationCalories, unread[0].Category)
}

func TestFoodService_DeleteKeepsNotifications(t *testing.T) {
	foods, goals, database, _ := newFoodServiceForTest(t)
	user := newTestUser(t, database, "ext_delete")
	notifications := repository.NewNotificationRepository(database)

	_, err := goals.Set(user.ID, "2026-08-28", 1000, 9999, 9999, 9999)
	require.NoError(t, err)

	food, err := foods.Add(user.ID, "cake", 1, ptr(1500), nil, nil, nil, "2026-08-28")
	require.NoError(t, err)

	unread, err := notifications.Unread(user.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	// Deleting the entry drops the totals below target, but the
	// already-issued notification stays.
	require.NoError(t, foods.Delete(user.ID, food.ID))

	unread, err = notifications.Unread(user.ID)
	require.NoError(t, err)
	assert.Len(t, unread, 1)

	totals, err := foods.DayTotals(user.ID, "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, 0.0, totals.Calories)
}
