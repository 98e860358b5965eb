package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/service"
)

func newDictionaryRouter(svc service.DictionaryService) http.Handler {
	h := NewDictionaryHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Post("/dictionary", h.CreateEntry)
	r.Get("/dictionary", h.ListEntries)
	r.Get("/dictionary/search", h.Search)
	r.Get("/dictionary/categories", h.ListCategories)
	r.Get("/dictionary/{id}", h.GetEntry)
	r.Delete("/dictionary/{id}", h.DeleteEntry)
	return r
}

func TestCreateEntryHandler(t *testing.T) {
	t.Parallel()

	t.Run("valid request returns 201", func(t *testing.T) {
		t.Parallel()
		svc := new(MockDictionaryService)
		svc.On("AddEntry",
			mock.Anything, "ᬭᬵᬳᬚᭂᬂ", "rahajeng", "selamat", "greetings", 1, mock.Anything).
			Return(&domain.DictionaryEntry{
				ID:       uuid.New(),
				Balinese: "ᬭᬵᬳᬚᭂᬂ",
				Latin:    "rahajeng",
				Category: "greetings",
			}, nil)

		body := `{
			"balinese": "ᬭᬵᬳᬚᭂᬂ",
			"latin": "rahajeng",
			"indonesian": "selamat",
			"category": "greetings",
			"level": 1
		}`
		req := httptest.NewRequest(http.MethodPost, "/dictionary", strings.NewReader(body))
		rec := httptest.NewRecorder()

		newDictionaryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()
		svc := new(MockDictionaryService)

		body := `{"latin": "rahajeng"}`
		req := httptest.NewRequest(http.MethodPost, "/dictionary", strings.NewReader(body))
		rec := httptest.NewRecorder()

		newDictionaryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "AddEntry",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSearchHandler(t *testing.T) {
	t.Parallel()

	t.Run("forwards the query", func(t *testing.T) {
		t.Parallel()
		svc := new(MockDictionaryService)
		svc.On("Search", mock.Anything, "rahajeng", 0).
			Return([]*domain.DictionaryEntry{
				{ID: uuid.New(), Latin: "rahajeng", Indonesian: "selamat"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dictionary/search?q=rahajeng", nil)
		rec := httptest.NewRecorder()

		newDictionaryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []*domain.DictionaryEntry
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got, 1)
	})

	t.Run("blank query returns 400", func(t *testing.T) {
		t.Parallel()
		svc := new(MockDictionaryService)
		svc.On("Search", mock.Anything, "", 0).
			Return(nil, service.ErrInvalidInput)

		req := httptest.NewRequest(http.MethodGet, "/dictionary/search", nil)
		rec := httptest.NewRecorder()

		newDictionaryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("custom limit is forwarded", func(t *testing.T) {
		t.Parallel()
		svc := new(MockDictionaryService)
		svc.On("Search", mock.Anything, "na", 5).
			Return([]*domain.DictionaryEntry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dictionary/search?q=na&limit=5", nil)
		rec := httptest.NewRecorder()

		newDictionaryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid limit returns 400", func(t *testing.T) {
		t.Parallel()
		svc := new(MockDictionaryService)

		req := httptest.NewRequest(http.MethodGet, "/dictionary/search?q=na&limit=zero", nil)
		rec := httptest.NewRecorder()

		newDictionaryRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListEntriesHandler(t *testing.T) {
	t.Parallel()

	t.Run("by category", func(t *testing.T) {
		t.Parallel()
		svc := new(MockDictionaryService)
		svc.On("ListByCategory", mock.Anything, "food").
			Return([]*domain.DictionaryEntry{{ID: uuid.New(), Latin: "nasi", Category: "food"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dictionary?category=food", nil)
		rec := httptest.NewRecorder()

		newDictionaryRouter(svc).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("by level", func(t *testing.T) {
		t.Parallel()
		svc := new(MockDictionaryService)
		svc.On("ListByLevel", mock.Anything, 2).
			Return([]*domain.DictionaryEntry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/dictionary?level=2", nil)
		rec := httptest.NewRecorder()

		newDictionaryRouter(svc).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no filter returns 400", func(t *testing.T) {
		t.Parallel()
		svc := new(MockDictionaryService)

		req := httptest.NewRequest(http.MethodGet, "/dictionary", nil)
		rec := httptest.NewRecorder()

		newDictionaryRouter(svc).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListCategoriesHandler(t *testing.T) {
	t.Parallel()
	svc := new(MockDictionaryService)
	svc.On("ListCategories", mock.Anything).
		Return([]string{"food", "greetings"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dictionary/categories", nil)
	rec := httptest.NewRecorder()

	newDictionaryRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, []string{"food", "greetings"}, got)
}
