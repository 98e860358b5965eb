package api

import (
	"log/slog"
	"net/http"

	"github.com/aksarabali/aksara-api/internal/api/shared"
	"github.com/aksarabali/aksara-api/internal/service"
)

// ProgressHandler holds the HTTP handlers for lesson progress endpoints.
type ProgressHandler struct {
	progressService service.ProgressService
	logger          *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(
	progressService service.ProgressService,
	logger *slog.Logger,
) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		logger:          logger.With(slog.String("component", "progress_handler")),
	}
}

// RecordAttempt handles POST /users/{id}/lessons/{lessonID}/attempts.
func (h *ProgressHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	lessonID, ok := handlePathUUID(w, r, "lessonID")
	if !ok {
		return
	}

	var req RecordAttemptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.progressService.RecordAttempt(r.Context(), userID, lessonID, req.Score)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetLessonProgress handles GET /users/{id}/lessons/{lessonID}/progress.
func (h *ProgressHandler) GetLessonProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	lessonID, ok := handlePathUUID(w, r, "lessonID")
	if !ok {
		return
	}

	progress, err := h.progressService.GetLessonProgress(r.Context(), userID, lessonID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}

// ListUserProgress handles GET /users/{id}/progress.
func (h *ProgressHandler) ListUserProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	records, err := h.progressService.ListUserProgress(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, records)
}
