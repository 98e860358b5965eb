package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/store"
)

// ErrEmptySearchQuery is returned when a dictionary search query is blank.
var ErrEmptySearchQuery = errors.New("search query cannot be empty")

// DictionaryService provides vocabulary lookup and management operations.
type DictionaryService interface {
	// AddEntry creates a new dictionary entry.
	AddEntry(
		ctx context.Context,
		balinese, latin, indonesian, category string,
		level int,
		examples []domain.DictionaryExample,
	) (*domain.DictionaryEntry, error)

	// GetEntry retrieves an entry by its ID.
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.DictionaryEntry, error)

	// Search finds entries whose script form, translation, or
	// transliteration contains the query, case-insensitively.
	Search(ctx context.Context, query string, limit int) ([]*domain.DictionaryEntry, error)

	// ListByCategory retrieves the entries of one category.
	ListByCategory(ctx context.Context, category string) ([]*domain.DictionaryEntry, error)

	// ListByLevel retrieves the entries of one difficulty level.
	ListByLevel(ctx context.Context, level int) ([]*domain.DictionaryEntry, error)

	// ListCategories retrieves the distinct categories in the dictionary.
	ListCategories(ctx context.Context) ([]string, error)

	// DeleteEntry removes an entry by its ID.
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// DictionaryServiceImpl implements the DictionaryService interface.
type DictionaryServiceImpl struct {
	dictionaryStore store.DictionaryStore
	logger          *slog.Logger
}

// NewDictionaryService creates a new DictionaryService.
func NewDictionaryService(
	dictionaryStore store.DictionaryStore,
	logger *slog.Logger,
) *DictionaryServiceImpl {
	return &DictionaryServiceImpl{
		dictionaryStore: dictionaryStore,
		logger:          logger.With(slog.String("component", "dictionary_service")),
	}
}

// AddEntry creates a new dictionary entry.
func (s *DictionaryServiceImpl) AddEntry(
	ctx context.Context,
	balinese, latin, indonesian, category string,
	level int,
	examples []domain.DictionaryExample,
) (*domain.DictionaryEntry, error) {
	entry, err := domain.NewDictionaryEntry(balinese, latin, indonesian, category, level, examples)
	if err != nil {
		s.logger.Warn("rejected invalid dictionary entry",
			"error", err,
			"latin", latin)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.dictionaryStore.Create(ctx, entry); err != nil {
		s.logger.Error("failed to save dictionary entry",
			"error", err,
			"latin", latin)
		return nil, err
	}

	s.logger.Info("dictionary entry added",
		"entry_id", entry.ID,
		"latin", entry.Latin,
		"category", entry.Category)
	return entry, nil
}

// GetEntry retrieves an entry by its ID.
func (s *DictionaryServiceImpl) GetEntry(
	ctx context.Context,
	id uuid.UUID,
) (*domain.DictionaryEntry, error) {
	entry, err := s.dictionaryStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrEntryNotFound) {
			s.logger.Error("failed to retrieve dictionary entry",
				"error", err,
				"entry_id", id)
		}
		return nil, err
	}
	return entry, nil
}

// Search finds entries matching the query.
func (s *DictionaryServiceImpl) Search(
	ctx context.Context,
	query string,
	limit int,
) ([]*domain.DictionaryEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptySearchQuery)
	}

	entries, err := s.dictionaryStore.Search(ctx, query, limit)
	if err != nil {
		s.logger.Error("dictionary search failed",
			"error", err,
			"query", query)
		return nil, err
	}
	return entries, nil
}

// ListByCategory retrieves the entries of one category.
func (s *DictionaryServiceImpl) ListByCategory(
	ctx context.Context,
	category string,
) ([]*domain.DictionaryEntry, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrEmptyCategory)
	}

	entries, err := s.dictionaryStore.ListByCategory(ctx, category)
	if err != nil {
		s.logger.Error("failed to list entries by category",
			"error", err,
			"category", category)
		return nil, err
	}
	return entries, nil
}

// ListByLevel retrieves the entries of one difficulty level.
func (s *DictionaryServiceImpl) ListByLevel(
	ctx context.Context,
	level int,
) ([]*domain.DictionaryEntry, error) {
	if level < 1 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidEntryLevel)
	}

	entries, err := s.dictionaryStore.ListByLevel(ctx, level)
	if err != nil {
		s.logger.Error("failed to list entries by level",
			"error", err,
			"level", level)
		return nil, err
	}
	return entries, nil
}

// ListCategories retrieves the distinct categories in the dictionary.
func (s *DictionaryServiceImpl) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.dictionaryStore.ListCategories(ctx)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, err
	}
	return categories, nil
}

// DeleteEntry removes an entry by its ID.
func (s *DictionaryServiceImpl) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := s.dictionaryStore.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrEntryNotFound) {
			s.logger.Error("failed to delete dictionary entry",
				"error", err,
				"entry_id", id)
		}
		return err
	}

	s.logger.Info("dictionary entry deleted", "entry_id", id)
	return nil
}

// Ensure DictionaryServiceImpl implements DictionaryService
var _ DictionaryService = (*DictionaryServiceImpl)(nil)
