// Package main implements the entry point for the Aksara API server,
// the backend for a Balinese script learning application: lessons with
// embedded exercises, a searchable dictionary, and per-user progress
// with experience, levels, streaks, hearts, and gems.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/aksarabali/aksara-api/internal/config"
	"github.com/aksarabali/aksara-api/internal/platform/logger"
	"github.com/aksarabali/aksara-api/internal/platform/postgres"
	"github.com/aksarabali/aksara-api/internal/seed"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	seedOnly := flag.Bool("seed", false, "run migrations, seed starter content into an empty database, and exit")
	flag.Parse()

	if err := run(*migrateOnly, *seedOnly); err != nil {
		log.Fatalf("aksara-api: %v", err)
	}
}

// run loads configuration, wires the application, and either runs the
// migrations, seeds starter content, or starts the HTTP server.
func run(migrateOnly, seedOnly bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if migrateOnly {
		appLogger.Info("migrations complete, exiting")
		return db.Close()
	}

	ctx := context.Background()

	if seedOnly {
		lessonStore := postgres.NewPostgresLessonStore(db, appLogger)
		dictionaryStore := postgres.NewPostgresDictionaryStore(db, appLogger)
		if err := seed.Run(ctx, lessonStore, dictionaryStore, appLogger); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to seed starter content: %w", err)
		}
		appLogger.Info("seeding complete, exiting")
		return db.Close()
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
