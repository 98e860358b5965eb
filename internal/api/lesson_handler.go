package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aksarabali/aksara-api/internal/api/shared"
	"github.com/aksarabali/aksara-api/internal/service"
	"github.com/aksarabali/aksara-api/internal/store"
)

// LessonHandler holds the HTTP handlers for lesson endpoints.
type LessonHandler struct {
	lessonService service.LessonService
	logger        *slog.Logger
}

// NewLessonHandler creates a new LessonHandler.
func NewLessonHandler(lessonService service.LessonService, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{
		lessonService: lessonService,
		logger:        logger.With(slog.String("component", "lesson_handler")),
	}
}

// CreateLesson handles POST /lessons.
func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	var req CreateLessonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	lesson, err := h.lessonService.CreateLesson(
		r.Context(),
		req.Title, req.Description,
		req.Level, req.Order,
		req.Locked,
		req.Exercises,
	)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, lesson)
}

// GetLesson handles GET /lessons/{id}.
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	lesson, err := h.lessonService.GetLesson(r.Context(), lessonID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lesson)
}

// ListLessons handles GET /lessons, optionally filtered by ?level=N.
func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	levelParam := r.URL.Query().Get("level")
	if levelParam == "" {
		lessons, err := h.lessonService.ListLessons(r.Context())
		if err != nil {
			HandleServiceError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, lessons)
		return
	}

	level, err := strconv.Atoi(levelParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid level parameter")
		return
	}

	lessons, err := h.lessonService.ListLessonsByLevel(r.Context(), level)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lessons)
}

// UpdateLesson handles PATCH /lessons/{id}.
func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateLessonRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := store.LessonPatch{
		Title:       req.Title,
		Description: req.Description,
		Locked:      req.Locked,
	}
	if patch.IsEmpty() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No fields to update")
		return
	}

	lesson, err := h.lessonService.UpdateLesson(r.Context(), lessonID, patch)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lesson)
}

// DeleteLesson handles DELETE /lessons/{id}.
func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.lessonService.DeleteLesson(r.Context(), lessonID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
