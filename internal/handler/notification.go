package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nutrifyhq/nutrify/internal/repository"
	"github.com/nutrifyhq/nutrify/internal/service"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
	userService         *service.UserService
}

func NewNotificationHandler(notificationService *service.NotificationService, userService *service.UserService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		userService:         userService,
	}
}

// List returns the caller's unread notifications, newest first.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := callerUser(w, r, h.userService)
	if !ok {
		return
	}

	notifications, err := h.notificationService.Unread(user.ID)
	if err != nil {
		slog.Error("failed to list notifications", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load notifications")
		return
	}

	respondJSON(w, http.StatusOK, notifications)
}

// MarkRead flips the read flag. The acting user is re-derived from the
// session, so a caller can only mark notifications they own.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	user, ok := callerUser(w, r, h.userService)
	if !ok {
		return
	}

	notificationID := r.PathValue("id")

	err := h.notificationService.MarkRead(user.ID, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		respondError(w, http.StatusNotFound, "Notification not found")
		return
	}
	if err != nil {
		slog.Error("failed to mark notification read", "error", err, "user_id", user.ID, "notification_id", notificationID)
		respondError(w, http.StatusInternalServerError, "Failed to update notification")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
