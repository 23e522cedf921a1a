package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/nutrifyhq/nutrify/internal/service"
)

const (
	chatErrorReply    = "There was an issue generating a response. Please try again later."
	chatFallbackReply = "Sorry, I couldn't generate a response."
)

type ChatHandler struct {
	chatService *service.ChatService
	foodService *service.FoodService
	userService *service.UserService
}

func NewChatHandler(chatService *service.ChatService, foodService *service.FoodService, userService *service.UserService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		foodService: foodService,
		userService: userService,
	}
}

// Chat answers one assistant message. The caller must be authenticated
// (401 handled by middleware) and synced (404 otherwise). Provider errors
// never propagate; the client gets a canned apology instead.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	user, ok := callerUser(w, r, h.userService)
	if !ok {
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	err := decodeJSON(r, &req)
	if err != nil || strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	history, err := h.foodService.Recent(user.ID, h.chatService.HistoryLimit(), 0)
	if err != nil {
		slog.Error("failed to load food history for chat", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load food history")
		return
	}

	reply, err := h.chatService.Reply(r.Context(), history, req.Message)
	if err != nil {
		slog.Error("assistant reply failed", "error", err, "user_id", user.ID)
		respondJSON(w, http.StatusOK, map[string]string{"reply": chatErrorReply})
		return
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = chatFallbackReply
	}

	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
