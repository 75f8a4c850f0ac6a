package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"f1-monk/internal/api"
	"f1-monk/internal/api/handlers"
	"f1-monk/internal/repository"
	"f1-monk/internal/service"
	"f1-monk/pkg/auth"
	"f1-monk/pkg/config"
	"f1-monk/pkg/logger"
	"f1-monk/pkg/postgres"

	"go.uber.org/zap"
)

// @title F1 Monk API
// @version 1.0
// @description Advisory assistant for F-1 international students
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@f1monk.dev

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
	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting F1 Monk service")

	// Initialize database
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	profileRepo := repository.NewProfileRepository(db, appLogger)
	notificationRepo := repository.NewNotificationRepository(db, appLogger)
	analyticsRepo := repository.NewAnalyticsRepository(db, appLogger)

	// Knowledge base: database first, seed file when the table is empty
	knowledge := service.NewKnowledgeBase(appLogger)
	if err := loadKnowledge(ctx, knowledge, knowledgeRepo, cfg.Knowledge.SeedFile, appLogger); err != nil {
		appLogger.Fatal("Failed to load knowledge base", zap.Error(err))
	}

	tracker := service.NewAnalyticsTracker(time.Now, appLogger)
	persisted, err := analyticsRepo.ListAll(ctx)
	if err != nil {
		appLogger.Warn("Failed to restore analytics, starting empty", zap.Error(err))
	} else {
		tracker.Restore(persisted)
	}

	var rng = service.NewSeededRand(cfg.Chat.RandomSeed)
	if cfg.Chat.RandomSeed == 0 {
		rng = nil
	}
	classifier := service.NewIntentClassifier(rng, appLogger)

	sessions := service.NewSessionManager(profileRepo, notificationRepo, knowledge, classifier, tracker, time.Now, appLogger)

	exporter := service.NewAnalyticsExporter(tracker, analyticsRepo, cfg.Analytics.ExportInterval, appLogger)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		exporter.Run(ctx)
	}()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Setup router
	app := api.SetupRouter(api.Handlers{
		Chat:          handlers.NewChatHandler(sessions, appLogger),
		Profile:       handlers.NewProfileHandler(sessions, time.Now, appLogger),
		Notifications: handlers.NewNotificationHandler(sessions, appLogger),
		Knowledge:     handlers.NewKnowledgeHandler(knowledge, tracker, cfg.Analytics.TopN, appLogger),
	}, cfg.Server, jwtManager, appLogger)

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

	cancel()
	wg.Wait()
}

func loadKnowledge(
	ctx context.Context,
	knowledge *service.KnowledgeBase,
	repo *repository.KnowledgeRepository,
	seedFile string,
	appLogger *zap.Logger,
) error {
	entries, err := repo.ListAll(ctx)
	if err != nil {
		appLogger.Warn("Failed to read knowledge entries from database", zap.Error(err))
	}
	if len(entries) > 0 {
		return knowledge.Load(entries)
	}

	appLogger.Info("Knowledge table empty, loading seed file", zap.String("path", seedFile))
	return knowledge.LoadFrom(ctx, repository.NewFileKnowledgeProvider(seedFile))
}
