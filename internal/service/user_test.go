package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrifyhq/nutrify/internal/repository"
)

func TestUserService_SyncCreatesOnce(t *testing.T) {
	database := newTestDB(t)
	mailer := &fakeMailer{}
	users := NewUserService(repository.NewUserRepository(database), mailer)

	pic := "https://example.com/me.png"
	first, err := users.Sync("ext_sync", "Jane Doe", "jane@example.com", &pic)
	require.NoError(t, err)
	assert.Equal(t, "ext_sync", first.ExternalID)
	assert.Len(t, mailer.welcomeEmails(), 1)

	// Second sync returns the same record and sends no second welcome,
	// even when the provider profile has changed.
	second, err := users.Sync("ext_sync", "Jane D.", "jane@example.com", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jane Doe", second.FullName)
	assert.Len(t, mailer.welcomeEmails(), 1)
}

func TestUserService_SyncValidation(t *testing.T) {
	database := newTestDB(t)
	users := NewUserService(repository.NewUserRepository(database), &fakeMailer{})

	_, err := users.Sync("", "Jane", "jane@example.com", nil)
	assert.Error(t, err)

	_, err = users.Sync("ext_bad_email", "Jane", "not-an-email", nil)
	assert.Error(t, err)
}

func TestUserService_ByExternalIDNotFound(t *testing.T) {
	database := newTestDB(t)
	users := NewUserService(repository.NewUserRepository(database), &fakeMailer{})

	_, err := users.ByExternalID("missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
