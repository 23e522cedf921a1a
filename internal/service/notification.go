package service

import (
	"github.com/nutrifyhq/nutrify/internal/model"
	"github.com/nutrifyhq/nutrify/internal/repository"
)

type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Unread lists a user's unread notifications, newest first. Read ones are
// filtered out by the query, not just flagged.
func (s *NotificationService) Unread(userID string) ([]*model.Notification, error) {
	return s.repo.Unread(userID)
}

// MarkRead flips the read flag on a notification the caller owns. A
// caller holding someone else's notification id gets ErrNotificationNotFound.
func (s *NotificationService) MarkRead(userID, notificationID string) error {
	return s.repo.MarkRead(userID, notificationID)
}
