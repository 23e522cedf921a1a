package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/nutrifyhq/nutrify/internal/repository"
	"github.com/nutrifyhq/nutrify/internal/service"
)

type FoodHandler struct {
	foodService *service.FoodService
	userService *service.UserService
}

func NewFoodHandler(foodService *service.FoodService, userService *service.UserService) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
		userService: userService,
	}
}

// Add logs a food entry for the caller. Goal evaluation (and any
// resulting notification and email) happens inside the service after the
// insert.
func (h *FoodHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := callerUser(w, r, h.userService)
	if !ok {
		return
	}

	var req struct {
		Name     string   `json:"name"`
		Quantity float64  `json:"quantity"`
		Calories *float64 `json:"calories"`
		Protein  *float64 `json:"protein"`
		Carbs    *float64 `json:"carbs"`
		Fats     *float64 `json:"fats"`
		Date     string   `json:"date"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	food, err := h.foodService.Add(user.ID, req.Name, req.Quantity, req.Calories, req.Protein, req.Carbs, req.Fats, req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, food)
}

// List returns the caller's entries. With ?date= the filter runs in the
// database over the (user, date) index; without it the history is paged,
// never returned unbounded.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := callerUser(w, r, h.userService)
	if !ok {
		return
	}

	date := r.URL.Query().Get("date")
	if date != "" {
		foods, err := h.foodService.ByDate(user.ID, date)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, foods)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	foods, err := h.foodService.Recent(user.ID, limit, offset)
	if err != nil {
		slog.Error("failed to list foods", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "Failed to load foods")
		return
	}

	respondJSON(w, http.StatusOK, foods)
}

// Totals returns the summed nutrients for one day, for dashboard charts.
func (h *FoodHandler) Totals(w http.ResponseWriter, r *http.Request) {
	user, ok := callerUser(w, r, h.userService)
	if !ok {
		return
	}

	totals, err := h.foodService.DayTotals(user.ID, r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, totals)
}

// Delete removes one of the caller's entries. Notifications issued
// earlier in the day are not affected.
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := callerUser(w, r, h.userService)
	if !ok {
		return
	}

	foodID := r.PathValue("id")

	err := h.foodService.Delete(user.ID, foodID)
	if errors.Is(err, repository.ErrFoodNotFound) {
		respondError(w, http.StatusNotFound, "Food entry not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete food", "error", err, "user_id", user.ID, "food_id", foodID)
		respondError(w, http.StatusInternalServerError, "Failed to delete food")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
