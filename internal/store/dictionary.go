package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
)

// DictionaryStore defines the interface for dictionary entry persistence.
type DictionaryStore interface {
	// Create saves a new dictionary entry to the store.
	// It handles domain validation internally.
	Create(ctx context.Context, entry *domain.DictionaryEntry) error

	// GetByID retrieves an entry by its unique ID.
	// Returns ErrEntryNotFound if the entry does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DictionaryEntry, error)

	// Search performs case-insensitive substring matching of the query
	// against the Balinese script form, the Indonesian translation, and the
	// Latin transliteration. Results are unordered beyond the store's
	// default collation; no relevance ranking is guaranteed. limit bounds
	// the result size.
	Search(ctx context.Context, query string, limit int) ([]*domain.DictionaryEntry, error)

	// ListByCategory retrieves all entries in a category, sorted by the
	// Balinese script form.
	ListByCategory(ctx context.Context, category string) ([]*domain.DictionaryEntry, error)

	// ListByLevel retrieves all entries at a difficulty level, sorted by
	// the Balinese script form.
	ListByLevel(ctx context.Context, level int) ([]*domain.DictionaryEntry, error)

	// ListCategories retrieves the distinct categories present in the store.
	ListCategories(ctx context.Context) ([]string, error)

	// Update modifies an existing entry. The caller provides a complete
	// entry; the updated timestamp is stamped by the store.
	// Returns ErrEntryNotFound if the entry does not exist.
	Update(ctx context.Context, entry *domain.DictionaryEntry) error

	// Delete removes an entry by its ID.
	// Returns ErrEntryNotFound if the entry does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new DictionaryStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) DictionaryStore
}
