package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spa-concierge/internal/api"
	"spa-concierge/internal/api/handlers"
	"spa-concierge/internal/repository"
	"spa-concierge/internal/service"
	"spa-concierge/pkg/auth"
	"spa-concierge/pkg/config"
	"spa-concierge/pkg/logger"
	"spa-concierge/pkg/postgres"

	"go.uber.org/zap"
)

// @title Spa Concierge Knowledge API
// @version 1.0
// @description Knowledge retrieval service backing the med-spa patient-education chat

// @contact.name API Support
// @contact.email support@spa-concierge.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting spa-concierge knowledge service")

	// Retrieval engine
	libraryService := service.NewLibraryService(&cfg.Knowledge, appLogger)
	searchService := service.NewSearchService(libraryService, &cfg.Retrieval, appLogger)
	escalationService := service.NewEscalationService(appLogger)

	knowledgeHandler := handlers.NewKnowledgeHandler(searchService, escalationService, libraryService, appLogger)

	// Editorial surface is optional: without a database the service runs
	// engine-only off the bundled catalog and any configured remote URL.
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	var (
		authHandler      *handlers.AuthHandler
		editorialHandler *handlers.EditorialHandler
	)

	ctx := context.Background()
	if cfg.Database.Enabled {
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		userRepo := repository.NewUserRepository(db, appLogger)
		contentRepo := repository.NewContentRepository(db, appLogger)

		authService := service.NewAuthService(userRepo, jwtManager, appLogger)
		publishService := service.NewPublishService(contentRepo, appLogger)

		authHandler = handlers.NewAuthHandler(authService, appLogger)
		editorialHandler = handlers.NewEditorialHandler(contentRepo, publishService, appLogger)
	}

	// Setup router
	app := api.SetupRouter(knowledgeHandler, authHandler, editorialHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
