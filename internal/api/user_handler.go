package api

import (
	"log/slog"
	"net/http"

	"github.com/aksarabali/aksara-api/internal/api/shared"
	"github.com/aksarabali/aksara-api/internal/service"
)

// UserHandler holds the HTTP handlers for user and gamification endpoints.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Email, req.Name)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// GetUser handles GET /users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// AwardExperience handles POST /users/{id}/experience.
func (h *UserHandler) AwardExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AwardExperienceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.AwardExperience(r.Context(), userID, req.Amount)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateStreak handles POST /users/{id}/streak.
func (h *UserHandler) UpdateStreak(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userService.UpdateStreak(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// AdjustHearts handles POST /users/{id}/hearts.
func (h *UserHandler) AdjustHearts(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AdjustCurrencyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.AdjustHearts(r.Context(), userID, req.Delta)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// AdjustGems handles POST /users/{id}/gems.
func (h *UserHandler) AdjustGems(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AdjustCurrencyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.AdjustGems(r.Context(), userID, req.Delta)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
