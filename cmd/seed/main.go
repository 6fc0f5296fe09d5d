package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/internal/seed"
	"github.com/ideahub/ideahub/pkg/config"
	"github.com/ideahub/ideahub/pkg/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger()
	logger.Info("Starting IdeaHub sample-data seeder")

	// Connect to the database
	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	seeder := seed.New(db.NewRepository(database.DB), &cfg.Seed, logger)
	if err := seeder.Run(context.Background()); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	logger.Info("Sample data seeded")
}
