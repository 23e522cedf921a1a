package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nutrifyhq/nutrify/internal/service"
)

type NutritionHandler struct {
	nutritionService *service.NutritionService
}

func NewNutritionHandler(nutritionService *service.NutritionService) *NutritionHandler {
	return &NutritionHandler{
		nutritionService: nutritionService,
	}
}

// Search proxies the food-composition lookup through the authenticated
// server boundary so the upstream API key never reaches a client.
func (h *NutritionHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if len(query) < 3 {
		respondError(w, http.StatusBadRequest, "Query must be at least 3 characters")
		return
	}

	estimates, err := h.nutritionService.Search(query)
	if errors.Is(err, service.ErrNutritionNotConfigured) {
		respondError(w, http.StatusServiceUnavailable, "Food search is not available")
		return
	}
	if err != nil {
		slog.Error("food search failed", "error", err, "query", query)
		respondError(w, http.StatusBadGateway, "Food search failed")
		return
	}

	respondJSON(w, http.StatusOK, estimates)
}
