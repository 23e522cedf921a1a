package handler

import (
	"errors"
	"net/http"

	"github.com/nutrifyhq/nutrify/internal/repository"
	"github.com/nutrifyhq/nutrify/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
	userService *service.UserService
}

func NewGoalHandler(goalService *service.GoalService, userService *service.UserService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		userService: userService,
	}
}

// Get returns the caller's goal for a date, or 404 when none is set.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := callerUser(w, r, h.userService)
	if !ok {
		return
	}

	goal, err := h.goalService.ByDate(user.ID, r.PathValue("date"))
	if errors.Is(err, repository.ErrGoalNotFound) {
		respondError(w, http.StatusNotFound, "No goal set for this date")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

// Set creates or replaces the caller's goal for a date. Repeated calls
// for the same date always leave exactly one goal holding the latest
// targets.
func (h *GoalHandler) Set(w http.ResponseWriter, r *http.Request) {
	user, ok := callerUser(w, r, h.userService)
	if !ok {
		return
	}

	var req struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fats     float64 `json:"fats"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.Set(user.ID, r.PathValue("date"), req.Calories, req.Protein, req.Carbs, req.Fats)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, goal)
}
