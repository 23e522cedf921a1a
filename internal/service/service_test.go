package service

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/nutrifyhq/nutrify/internal/db"
	"github.com/nutrifyhq/nutrify/internal/model"
	"github.com/nutrifyhq/nutrify/internal/repository"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

func newTestUser(t *testing.T, database *sqlx.DB, externalID string) *model.User {
	t.Helper()

	user := &model.User{
		ID:         uuid.New().String(),
		ExternalID: externalID,
		FullName:   "Test User",
		Email:      "test@example.com",
		CreatedAt:  time.Now(),
	}
	err := repository.NewUserRepository(database).Create(user)
	require.NoError(t, err)

	return user
}

// fakeMailer records scheduled emails synchronously so tests can assert
// exactly what was handed off for delivery.
type fakeMailer struct {
	mu       sync.Mutex
	goal     []string
	welcomes []string
}

func (f *fakeMailer) ScheduleGoalEmail(email, name, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.goal = append(f.goal, message)
}

func (f *fakeMailer) ScheduleWelcomeEmail(email, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomes = append(f.welcomes, email)
}

func (f *fakeMailer) goalEmails() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.goal...)
}

func (f *fakeMailer) welcomeEmails() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.welcomes...)
}

func newFoodServiceForTest(t *testing.T) (*FoodService, *GoalService, *sqlx.DB, *fakeMailer) {
	t.Helper()

	database := newTestDB(t)
	mailer := &fakeMailer{}
	foods := NewFoodService(
		repository.NewFoodRepository(database),
		repository.NewGoalRepository(database),
		repository.NewNotificationRepository(database),
		repository.NewUserRepository(database),
		mailer,
	)
	goals := NewGoalService(repository.NewGoalRepository(database))

	return foods, goals, database, mailer
}
