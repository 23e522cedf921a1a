package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/nutrifyhq/nutrify/internal/config"
	"github.com/nutrifyhq/nutrify/internal/db"
	"github.com/nutrifyhq/nutrify/internal/jobs"
	"github.com/nutrifyhq/nutrify/internal/repository"
	"github.com/nutrifyhq/nutrify/internal/service"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	Mailer              *jobs.EmailDispatcher
	IdentityService     *service.IdentityService
	UserService         *service.UserService
	FoodService         *service.FoodService
	GoalService         *service.GoalService
	NotificationService *service.NotificationService
	NutritionService    *service.NutritionService
	ChatService         *service.ChatService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	foodRepository := repository.NewFoodRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	notificationRepository := repository.NewNotificationRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	mailer := jobs.NewEmailDispatcher(emailService, 64)

	identityService := service.NewIdentityService(cfg.SessionSecret)
	userService := service.NewUserService(userRepository, mailer)
	goalService := service.NewGoalService(goalRepository)
	foodService := service.NewFoodService(foodRepository, goalRepository, notificationRepository, userRepository, mailer)
	notificationService := service.NewNotificationService(notificationRepository)
	nutritionService := service.NewNutritionService(cfg.USDAAPIKey)
	chatService := service.NewChatService(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		Mailer:              mailer,
		IdentityService:     identityService,
		UserService:         userService,
		FoodService:         foodService,
		GoalService:         goalService,
		NotificationService: notificationService,
		NutritionService:    nutritionService,
		ChatService:         chatService,
	}, nil
}

func (a *App) Close() error {
	if a.Mailer != nil {
		a.Mailer.Close()
	}
	return db.Close(a.DB)
}
