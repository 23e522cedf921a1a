package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nutrifyhq/nutrify/internal/ctxkeys"
	"github.com/nutrifyhq/nutrify/internal/model"
	"github.com/nutrifyhq/nutrify/internal/repository"
	"github.com/nutrifyhq/nutrify/internal/service"
)

// callerUser resolves the authenticated caller's synced application user.
// Writes 404 when the caller has not synced yet, 500 on storage errors;
// the bool reports whether the handler may continue.
func callerUser(w http.ResponseWriter, r *http.Request, users *service.UserService) (*model.User, bool) {
	identity := ctxkeys.CallerIdentity(r.Context())

	user, err := users.ByExternalID(identity.ExternalID)
	if errors.Is(err, repository.ErrUserNotFound) {
		respondError(w, http.StatusNotFound, "User not synced")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to resolve caller", "error", err, "external_id", identity.ExternalID)
		respondError(w, http.StatusInternalServerError, "Failed to load user")
		return nil, false
	}

	return user, true
}
