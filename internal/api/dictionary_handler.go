package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aksarabali/aksara-api/internal/api/shared"
	"github.com/aksarabali/aksara-api/internal/service"
)

// DictionaryHandler holds the HTTP handlers for dictionary endpoints.
type DictionaryHandler struct {
	dictionaryService service.DictionaryService
	logger            *slog.Logger
}

// NewDictionaryHandler creates a new DictionaryHandler.
func NewDictionaryHandler(
	dictionaryService service.DictionaryService,
	logger *slog.Logger,
) *DictionaryHandler {
	return &DictionaryHandler{
		dictionaryService: dictionaryService,
		logger:            logger.With(slog.String("component", "dictionary_handler")),
	}
}

// CreateEntry handles POST /dictionary.
func (h *DictionaryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req CreateEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.dictionaryService.AddEntry(
		r.Context(),
		req.Balinese, req.Latin, req.Indonesian, req.Category,
		req.Level,
		req.Examples,
	)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, entry)
}

// GetEntry handles GET /dictionary/{id}.
func (h *DictionaryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entryID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.dictionaryService.GetEntry(r.Context(), entryID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entry)
}

// Search handles GET /dictionary/search?q=...&limit=N.
func (h *DictionaryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	entries, err := h.dictionaryService.Search(r.Context(), query, limit)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entries)
}

// ListEntries handles GET /dictionary, filtered by ?category= or ?level=N.
// Without a filter it rejects the request; the dictionary is large and the
// client always browses by category or level.
func (h *DictionaryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	levelParam := r.URL.Query().Get("level")

	switch {
	case category != "":
		entries, err := h.dictionaryService.ListByCategory(r.Context(), category)
		if err != nil {
			HandleServiceError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, entries)

	case levelParam != "":
		level, err := strconv.Atoi(levelParam)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid level parameter")
			return
		}
		entries, err := h.dictionaryService.ListByLevel(r.Context(), level)
		if err != nil {
			HandleServiceError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, entries)

	default:
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Either category or level parameter is required")
	}
}

// ListCategories handles GET /dictionary/categories.
func (h *DictionaryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.dictionaryService.ListCategories(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}

// DeleteEntry handles DELETE /dictionary/{id}.
func (h *DictionaryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.dictionaryService.DeleteEntry(r.Context(), entryID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
