package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nutrifyhq/nutrify/internal/model"
	"github.com/nutrifyhq/nutrify/internal/repository"
	"github.com/nutrifyhq/nutrify/internal/validation"
)

// Per-nutrient notification copy, matching the in-app inbox wording.
var goalMessages = map[string]string{
	model.NotificationCalories: "You've reached your calorie goal for today!",
	model.NotificationProtein:  "You've hit your protein target!",
	model.NotificationCarbs:    "You've completed your carbs goal!",
	model.NotificationFats:     "You've met your fats goal!",
}

type FoodService struct {
	repo             repository.FoodRepository
	goalRepo         repository.GoalRepository
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	mailer           EmailScheduler
}

func NewFoodService(
	repo repository.FoodRepository,
	goalRepo repository.GoalRepository,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	mailer EmailScheduler,
) *FoodService {
	return &FoodService{
		repo:             repo,
		goalRepo:         goalRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
	}
}

// Add inserts a tracked food entry and then evaluates the day's goal.
// Goal evaluation runs after the entry is durably written; a failure
// there is logged but never unwinds the insert.
func (s *FoodService) Add(userID, name string, quantity float64, calories, protein, carbs, fats *float64, date string) (*model.TrackedFood, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateQuantity(quantity)
	if err != nil {
		return nil, err
	}
	for _, nutrient := range []struct {
		name  string
		value *float64
	}{
		{"calories", calories},
		{"protein", protein},
		{"carbs", carbs},
		{"fats", fats},
	} {
		err = validation.ValidateNutrient(nutrient.name, nutrient.value)
		if err != nil {
			return nil, err
		}
	}

	food := &model.TrackedFood{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Quantity:  quantity,
		Calories:  calories,
		Protein:   protein,
		Carbs:     carbs,
		Fats:      fats,
		EntryDate: date,
		CreatedAt: time.Now(),
	}

	err = s.repo.Create(food)
	if err != nil {
		return nil, fmt.Errorf("failed to create food entry: %w", err)
	}

	err = s.evaluateGoal(userID, date)
	if err != nil {
		slog.Error("goal evaluation failed", "error", err, "user_id", userID, "date", date)
	}

	return food, nil
}

// evaluateGoal recomputes the day's totals and fires one notification and
// one email per nutrient whose target has been met. The notification
// insert is idempotent on (user, date, nutrient), so a dimension fires at
// most once per day no matter how many entries follow.
func (s *FoodService) evaluateGoal(userID, date string) error {
	goal, err := s.goalRepo.ByUserAndDate(userID, date)
	if errors.Is(err, repository.ErrGoalNotFound) {
		// No goal for the day means nothing to evaluate.
		return nil
	}
	if err != nil {
		return err
	}

	totals, err := s.repo.DayTotals(userID, date)
	if err != nil {
		return err
	}

	reached := []struct {
		category string
		total    float64
		target   float64
	}{
		{model.NotificationCalories, totals.Calories, goal.Calories},
		{model.NotificationProtein, totals.Protein, goal.Protein},
		{model.NotificationCarbs, totals.Carbs, goal.Carbs},
		{model.NotificationFats, totals.Fats, goal.Fats},
	}

	for _, dimension := range reached {
		if dimension.total < dimension.target {
			continue
		}

		message := goalMessages[dimension.category]
		created, err := s.notificationRepo.CreateIfAbsent(&model.Notification{
			ID:         uuid.New().String(),
			UserID:     userID,
			Category:   dimension.category,
			Message:    message,
			NotifyDate: date,
			IsRead:     false,
			CreatedAt:  time.Now(),
		})
		if err != nil {
			return err
		}
		if !created {
			// Already notified for this nutrient today.
			continue
		}

		user, err := s.userRepo.ByID(userID)
		if err != nil {
			return err
		}

		s.mailer.ScheduleGoalEmail(user.Email, user.FullName, message)
		slog.Info("goal reached", "user_id", userID, "date", date, "category", dimension.category)
	}

	return nil
}

// ByDate lists one day's entries; the filter runs in the database.
func (s *FoodService) ByDate(userID, date string) ([]*model.TrackedFood, error) {
	err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	return s.repo.ByUserAndDate(userID, date)
}

// Recent pages through a user's history newest-first.
func (s *FoodService) Recent(userID string, limit, offset int) ([]*model.TrackedFood, error) {
	return s.repo.Recent(userID, limit, offset)
}

// Delete removes an entry the caller owns. Notifications already issued
// for the day stay untouched.
func (s *FoodService) Delete(userID, foodID string) error {
	return s.repo.Delete(userID, foodID)
}

// DayTotals exposes the summed nutrients for dashboards.
func (s *FoodService) DayTotals(userID, date string) (*model.DayTotals, error) {
	err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	return s.repo.DayTotals(userID, date)
}
