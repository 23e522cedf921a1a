package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/nutrifyhq/nutrify/internal/db"
	"github.com/nutrifyhq/nutrify/internal/model"
)

// newTestDB opens an in-memory SQLite database with all migrations
// applied. A single connection keeps every query on the same database.
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
	err := NewUserRepository(database).Create(user)
	require.NoError(t, err)

	return user
}
