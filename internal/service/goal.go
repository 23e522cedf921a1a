package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutrifyhq/nutrify/internal/model"
	"github.com/nutrifyhq/nutrify/internal/repository"
	"github.com/nutrifyhq/nutrify/internal/validation"
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// Set creates or replaces the goal for (user, date). The write is a
// single storage-level upsert, so two sequential or concurrent calls
// always leave exactly one row holding the last writer's targets.
func (s *GoalService) Set(userID, date string, calories, protein, carbs, fats float64) (*model.DailyGoal, error) {
	err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}
	for _, target := range []struct {
		name  string
		value float64
	}{
		{"calories", calories},
		{"protein", protein},
		{"carbs", carbs},
		{"fats", fats},
	} {
		err = validation.ValidateTarget(target.name, target.value)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	goal := &model.DailyGoal{
		ID:        uuid.New().String(),
		UserID:    userID,
		GoalDate:  date,
		Calories:  calories,
		Protein:   protein,
		Carbs:     carbs,
		Fats:      fats,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Upsert(goal)
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the stored row (the id and created_at
	// of the original row survive an update).
	return s.repo.ByUserAndDate(userID, date)
}

func (s *GoalService) ByDate(userID, date string) (*model.DailyGoal, error) {
	err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	return s.repo.ByUserAndDate(userID, date)
}
