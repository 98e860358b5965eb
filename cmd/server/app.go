package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/aksarabali/aksara-api/internal/config"
	"github.com/aksarabali/aksara-api/internal/domain/progression"
	"github.com/aksarabali/aksara-api/internal/platform/postgres"
	"github.com/aksarabali/aksara-api/internal/service"
	"github.com/aksarabali/aksara-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore       store.UserStore
	lessonStore     store.LessonStore
	dictionaryStore store.DictionaryStore
	progressStore   store.ProgressStore

	// Services
	rules             progression.Service
	userService       service.UserService
	lessonService     service.LessonService
	dictionaryService service.DictionaryService
	progressService   service.ProgressService
}

// newApplication creates a new application instance with all dependencies
// initialized. Configuration, logging, and the database connection must be
// established before this is called.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.lessonStore = postgres.NewPostgresLessonStore(db, logger)
	app.dictionaryStore = postgres.NewPostgresDictionaryStore(db, logger)
	app.progressStore = postgres.NewPostgresProgressStore(db, logger)

	app.rules = progression.NewDefaultService()

	app.userService = service.NewUserService(app.userStore, app.rules, db, logger)
	app.lessonService = service.NewLessonService(app.lessonStore, logger)
	app.dictionaryService = service.NewDictionaryService(app.dictionaryStore, logger)
	app.progressService = service.NewProgressService(
		app.progressStore,
		app.userStore,
		app.lessonStore,
		app.rules,
		db,
		logger,
	)

	logger.Info("application initialized")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
