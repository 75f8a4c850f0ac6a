package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"f1-monk/internal/repository"
	"f1-monk/pkg/config"
	"f1-monk/pkg/logger"
	"f1-monk/pkg/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var seedPath string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the knowledge base seed file into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), seedPath)
		},
	}
	cmd.Flags().StringVarP(&seedPath, "file", "f", "", "seed file (defaults to KNOWLEDGE_SEED_FILE)")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, seedPath string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if seedPath == "" {
		seedPath = cfg.Knowledge.SeedFile
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	notificationRepo := repository.NewNotificationRepository(db, appLogger)

	appLogger.Info("Starting database seeding...", zap.String("file", seedPath))

	seed, err := repository.LoadSeedFile(seedPath)
	if err != nil {
		appLogger.Error("Failed to load seed file", zap.Error(err))
		return err
	}

	if err := knowledgeRepo.UpsertBatch(ctx, seed.Entries); err != nil {
		appLogger.Error("Failed to seed knowledge entries", zap.Error(err))
		return err
	}

	now := time.Now()
	for i := range seed.Notifications {
		if seed.Notifications[i].CreatedAt.IsZero() {
			seed.Notifications[i].CreatedAt = now
		}
	}
	if err := notificationRepo.CreateBatch(ctx, seed.Notifications); err != nil {
		appLogger.Error("Failed to seed notifications", zap.Error(err))
		return err
	}
	appLogger.Info("Notifications seeded", zap.Int("count", len(seed.Notifications)))

	appLogger.Info("Database seeding completed successfully!")
	return nil
}
