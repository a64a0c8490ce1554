// Seeds the editorial content store with the knowledge entries bundled in
// the catalog, so editors start from the shipped library instead of an empty
// store. Safe to re-run: existing entries are updated in place.
package main

import (
	"context"
	"log"

	"spa-concierge/internal/catalog"
	"spa-concierge/internal/repository"
	"spa-concierge/pkg/config"
	"spa-concierge/pkg/logger"
	"spa-concierge/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	contentRepo := repository.NewContentRepository(db, appLogger)

	appLogger.Info("Seeding content store from bundled catalog")

	seeded := 0
	for _, entry := range catalog.Entries() {
		e := entry
		if err := contentRepo.Upsert(ctx, &e); err != nil {
			appLogger.Error("Failed to seed entry",
				zap.String("id", e.ID), zap.Error(err))
			continue
		}
		seeded++
	}

	appLogger.Info("Content store seeding completed",
		zap.Int("seeded", seeded),
		zap.Int("total", len(catalog.Entries())),
	)
}
