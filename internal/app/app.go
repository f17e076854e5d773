package app

import (
	"context"
	"errors"
	"fmt"

	"quicktweet_backend/internal/auth"
	"quicktweet_backend/internal/config"
	"quicktweet_backend/internal/handlers"
	"quicktweet_backend/internal/logger"
	"quicktweet_backend/internal/middleware"
	"quicktweet_backend/internal/models"
	"quicktweet_backend/internal/repositories"
	"quicktweet_backend/internal/routes"
	"quicktweet_backend/internal/services"
	"quicktweet_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := gormDB.AutoMigrate(&models.User{}, &models.AuthorizationLedger{}); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	store := repositories.NewStore(gormDB)
	serviceContainer := services.NewServiceContainer(store)

	// Реестр заявок должен существовать до первой регистрации
	if err := serviceContainer.AuthorizationService.EnsureLedger(context.Background()); err != nil {
		logger.Fatal("Failed to ensure authorization ledger", "error", err)
	}

	if err := seedFirstAdmin(context.Background(), store, cfg); err != nil {
		// Без администратора никто не сможет одобрять регистрации
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, serviceContainer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, serviceContainer *services.ServiceContainer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// seedFirstAdmin создает первого администратора, если его еще нет.
// Админ создается сразу одобренным, иначе некому было бы его одобрить.
func seedFirstAdmin(ctx context.Context, store repositories.Store, cfg *config.Config) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin credentials are not configured. Skipping admin seeding.")
		return nil
	}

	_, err := store.Users().FindByUsername(ctx, cfg.Admin.Username)
	if err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", cfg.Admin.Username)
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	logger.Warn("No admin user found. Creating first admin...", "username", cfg.Admin.Username)

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:       cfg.Admin.Username,
		Email:          cfg.Admin.Email,
		PasswordHash:   hashedPassword,
		Role:           models.UserRoleAdmin,
		PendingRequest: false,
	}

	if err := store.Users().Create(ctx, newAdmin); err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("✅ Successfully created first admin user", "username", cfg.Admin.Username)
	return nil
}
