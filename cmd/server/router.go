package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aksarabali/aksara-api/internal/api"
	apiMiddleware "github.com/aksarabali/aksara-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	userHandler := api.NewUserHandler(app.userService, app.logger)
	lessonHandler := api.NewLessonHandler(app.lessonService, app.logger)
	dictionaryHandler := api.NewDictionaryHandler(app.dictionaryService, app.logger)
	progressHandler := api.NewProgressHandler(app.progressService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// User and gamification endpoints
		r.Post("/users", userHandler.CreateUser)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Delete("/users/{id}", userHandler.DeleteUser)
		r.Post("/users/{id}/experience", userHandler.AwardExperience)
		r.Post("/users/{id}/streak", userHandler.UpdateStreak)
		r.Post("/users/{id}/hearts", userHandler.AdjustHearts)
		r.Post("/users/{id}/gems", userHandler.AdjustGems)

		// Progress endpoints
		r.Post("/users/{id}/lessons/{lessonID}/attempts", progressHandler.RecordAttempt)
		r.Get("/users/{id}/lessons/{lessonID}/progress", progressHandler.GetLessonProgress)
		r.Get("/users/{id}/progress", progressHandler.ListUserProgress)

		// Lesson endpoints
		r.Post("/lessons", lessonHandler.CreateLesson)
		r.Get("/lessons", lessonHandler.ListLessons)
		r.Get("/lessons/{id}", lessonHandler.GetLesson)
		r.Patch("/lessons/{id}", lessonHandler.UpdateLesson)
		r.Delete("/lessons/{id}", lessonHandler.DeleteLesson)

		// Dictionary endpoints
		r.Post("/dictionary", dictionaryHandler.CreateEntry)
		r.Get("/dictionary", dictionaryHandler.ListEntries)
		r.Get("/dictionary/search", dictionaryHandler.Search)
		r.Get("/dictionary/categories", dictionaryHandler.ListCategories)
		r.Get("/dictionary/{id}", dictionaryHandler.GetEntry)
		r.Delete("/dictionary/{id}", dictionaryHandler.DeleteEntry)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
