package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nutrifyhq/nutrify/internal/model"
	"github.com/nutrifyhq/nutrify/internal/repository"
	"github.com/nutrifyhq/nutrify/internal/validation"
)

// EmailScheduler hands an email off for asynchronous, best-effort
// delivery. Implementations must not block the caller.
type EmailScheduler interface {
	ScheduleGoalEmail(email, name, message string)
	ScheduleWelcomeEmail(email, name string)
}

type UserService struct {
	repo   repository.UserRepository
	mailer EmailScheduler
}

func NewUserService(repo repository.UserRepository, mailer EmailScheduler) *UserService {
	return &UserService{
		repo:   repo,
		mailer: mailer,
	}
}

// Sync returns the existing user for the identity reference, or creates
// one from the provider-supplied profile. Profiles are create-or-fetch
// only: fields of an already synced user are returned unchanged.
func (s *UserService) Sync(externalID, fullName, email string, profilePic *string) (*model.User, error) {
	if externalID == "" {
		return nil, errors.New("external id is required")
	}
	err := validation.ValidateEmail(email)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ByExternalID(externalID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user := &model.User{
		ID:         uuid.New().String(),
		ExternalID: externalID,
		FullName:   fullName,
		Email:      email,
		ProfilePic: profilePic,
		CreatedAt:  time.Now(),
	}

	err = s.repo.Create(user)
	if errors.Is(err, repository.ErrDuplicateExternalID) {
		// Lost a create race; the winner's record is the user.
		return s.repo.ByExternalID(externalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.mailer.ScheduleWelcomeEmail(user.Email, user.FullName)

	return user, nil
}

// ByExternalID resolves the synced application user for an identity
// reference. Callers translate ErrUserNotFound into a 404.
func (s *UserService) ByExternalID(externalID string) (*model.User, error) {
	return s.repo.ByExternalID(externalID)
}

func (s *UserService) Users() ([]*model.User, error) {
	return s.repo.Users()
}
