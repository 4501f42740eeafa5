package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ratewise/ratewise-backend/config"
	"github.com/ratewise/ratewise-backend/internal/app/controller"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	"github.com/ratewise/ratewise-backend/internal/app/service"
	"github.com/ratewise/ratewise-backend/internal/db"
	"github.com/ratewise/ratewise-backend/internal/middleware"
	"github.com/ratewise/ratewise-backend/internal/router"
	"github.com/ratewise/ratewise-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Ratewise Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	storeRepo := repository.NewStoreRepository(db.GetDB())
	ratingRepo := repository.NewRatingRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	userService := service.NewUserService(userRepo, storeRepo, ratingRepo)
	storeService := service.NewStoreService(storeRepo, userRepo, ratingRepo)
	ratingService := service.NewRatingService(ratingRepo, storeRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	adminController := controller.NewAdminController(userService, storeService)
	userController := controller.NewUserController(ratingService, authService)
	storeController := controller.NewStoreController(storeService, authService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		adminController,
		userController,
		storeController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
