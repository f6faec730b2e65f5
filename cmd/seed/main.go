package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"homehero/config"
	"homehero/database"
	"homehero/seed"
	"homehero/utils"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.IsProduction())

	err := run(cfg, logger)
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := database.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", zap.Error(err))
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Disconnect(context.Background())

	result, err := seed.Run(ctx, cols.Services, logger)
	if err != nil {
		logger.Error("Seed failed", zap.Error(err))
		return err
	}

	if result.Skipped {
		logger.Info("Seed skipped", zap.Int64("existingCount", result.ExistingCount))
		return nil
	}
	logger.Info("Seed complete",
		zap.Int("inserted", result.Inserted),
		zap.Int64("total", result.Total))
	return nil
}
