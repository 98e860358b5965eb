package api

import (
	"errors"
	"net/http"

	"github.com/aksarabali/aksara-api/internal/api/shared"
	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/service"
	"github.com/aksarabali/aksara-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error types
// or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Domain rule rejections
	case errors.Is(err, service.ErrInsufficientGems):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors, most specific first
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrLessonNotFound):
		return "Lesson not found"

	case errors.Is(err, store.ErrEntryNotFound):
		return "Dictionary entry not found"

	case errors.Is(err, store.ErrProgressNotFound):
		return "Lesson not started"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrLessonOrderExists):
		return "A lesson already occupies this position"

	// Bad request errors
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid input"

	case errors.Is(err, service.ErrInsufficientGems):
		return "Not enough gems"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError writes the response for an error coming out of the
// service layer: status from MapErrorToStatusCode, body from
// GetSafeErrorMessage, full error in the logs only.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
