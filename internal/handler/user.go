package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nutrifyhq/nutrify/internal/ctxkeys"
	"github.com/nutrifyhq/nutrify/internal/repository"
	"github.com/nutrifyhq/nutrify/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Sync creates the application user for the caller's identity reference
// on first sign-in, or returns the existing record. The profile fields
// come from the provider's verified claims; an optional body may fill in
// fields the provider did not assert.
func (h *UserHandler) Sync(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.CallerIdentity(r.Context())

	var req struct {
		FullName   string  `json:"fullName"`
		Email      string  `json:"email"`
		ProfilePic *string `json:"profilePic"`
	}
	// Body is optional; ignore decode errors for an empty body.
	_ = decodeJSON(r, &req)

	fullName := identity.Name
	if fullName == "" {
		fullName = req.FullName
	}
	email := identity.Email
	if email == "" {
		email = req.Email
	}
	profilePic := req.ProfilePic
	if identity.AvatarURL != "" {
		avatar := identity.AvatarURL
		profilePic = &avatar
	}

	user, err := h.userService.Sync(identity.ExternalID, fullName, email, profilePic)
	if err != nil {
		slog.Error("failed to sync user", "error", err, "external_id", identity.ExternalID)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// Me returns the caller's synced record, or 404 before first sync.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.CallerIdentity(r.Context())

	user, err := h.userService.ByExternalID(identity.ExternalID)
	if errors.Is(err, repository.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "User not synced")
		return
	}
	if err != nil {
		slog.Error("failed to load user", "error", err, "external_id", identity.ExternalID)
		respondError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// List returns all users. Requires an authenticated caller.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.Users()
	if err != nil {
		slog.Error("failed to list users", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load users")
		return
	}

	respondJSON(w, http.StatusOK, users)
}
