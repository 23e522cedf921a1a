package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrifyhq/nutrify/internal/model"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepository(database)

	pic := "https://example.com/avatar.png"
	user := &model.User{
		ID:         uuid.New().String(),
		ExternalID: "ext_123",
		FullName:   "Jane Doe",
		Email:      "jane@example.com",
		ProfilePic: &pic,
		CreatedAt:  time.Now(),
	}

	require.NoError(t, repo.Create(user))

	got, err := repo.ByExternalID("ext_123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.FullName)
	require.NotNil(t, got.ProfilePic)
	assert.Equal(t, pic, *got.ProfilePic)

	byID, err := repo.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ext_123", byID.ExternalID)
}

func TestUserRepository_DuplicateExternalID(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepository(database)

	newTestUser(t, database, "ext_dup")

	err := repo.Create(&model.User{
		ID:         uuid.New().String(),
		ExternalID: "ext_dup",
		FullName:   "Impostor",
		Email:      "other@example.com",
		CreatedAt:  time.Now(),
	})
	assert.ErrorIs(t, err, ErrDuplicateExternalID)
}

func TestUserRepository_NotFound(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepository(database)

	_, err := repo.ByExternalID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.ByID("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_Users(t *testing.T) {
	database := newTestDB(t)
	repo := NewUserRepository(database)

	newTestUser(t, database, "ext_a")
	newTestUser(t, database, "ext_b")

	users, err := repo.Users()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
