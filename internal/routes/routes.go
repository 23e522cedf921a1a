package routes

import (
	"net/http"

	"github.com/nutrifyhq/nutrify/internal/app"
	"github.com/nutrifyhq/nutrify/internal/handler"
	"github.com/nutrifyhq/nutrify/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	user := handler.NewUserHandler(app.UserService)
	food := handler.NewFoodHandler(app.FoodService, app.UserService)
	goal := handler.NewGoalHandler(app.GoalService, app.UserService)
	notification := handler.NewNotificationHandler(app.NotificationService, app.UserService)
	nutrition := handler.NewNutritionHandler(app.NutritionService)
	chat := handler.NewChatHandler(app.ChatService, app.FoodService, app.UserService)

	mux := http.NewServeMux()

	// Liveness
	mux.HandleFunc("GET /health", health.Health)

	// Users
	mux.HandleFunc("POST /api/users/sync", middleware.RequireAuth(user.Sync))
	mux.HandleFunc("GET /api/users", middleware.RequireAuth(user.List))
	mux.HandleFunc("GET /api/users/me", middleware.RequireAuth(user.Me))

	// Tracked food
	mux.HandleFunc("POST /api/foods", middleware.RequireAuth(food.Add))
	mux.HandleFunc("GET /api/foods", middleware.RequireAuth(food.List))
	mux.HandleFunc("GET /api/foods/totals", middleware.RequireAuth(food.Totals))
	mux.HandleFunc("DELETE /api/foods/{id}", middleware.RequireAuth(food.Delete))

	// Daily goals
	mux.HandleFunc("GET /api/goals/{date}", middleware.RequireAuth(goal.Get))
	mux.HandleFunc("PUT /api/goals/{date}", middleware.RequireAuth(goal.Set))

	// Notifications
	mux.HandleFunc("GET /api/notifications", middleware.RequireAuth(notification.List))
	mux.HandleFunc("POST /api/notifications/{id}/read", middleware.RequireAuth(notification.MarkRead))

	// Food composition lookup (server-side proxy, key stays in config)
	mux.HandleFunc("GET /api/nutrition/search", middleware.RequireAuth(nutrition.Search))

	// Assistant (rate limited; every request costs a completion call)
	chatLimiter := middleware.RateLimit(app.Cfg.ChatRateLimit, app.Cfg.ChatRateWindow)
	mux.HandleFunc("POST /api/chat", chatLimiter(middleware.RequireAuth(chat.Chat)))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Identity(app.IdentityService),
	)
}
