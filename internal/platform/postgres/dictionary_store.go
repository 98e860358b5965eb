package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/platform/logger"
	"github.com/aksarabali/aksara-api/internal/store"
)

// defaultSearchLimit bounds dictionary searches when the caller passes a
// non-positive limit.
const defaultSearchLimit = 20

// PostgresDictionaryStore implements the store.DictionaryStore interface
// using a PostgreSQL database as the storage backend.
// Usage examples are embedded in the entry row as a JSONB column.
type PostgresDictionaryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDictionaryStore creates a new PostgreSQL implementation of the
// DictionaryStore interface. If logger is nil, a default logger will be used.
func NewPostgresDictionaryStore(db store.DBTX, log *slog.Logger) *PostgresDictionaryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresDictionaryStore{
		db:     db,
		logger: log.With(slog.String("component", "dictionary_store")),
	}
}

// Ensure PostgresDictionaryStore implements store.DictionaryStore interface
var _ store.DictionaryStore = (*PostgresDictionaryStore)(nil)

// WithTx implements store.DictionaryStore.WithTx
func (s *PostgresDictionaryStore) WithTx(tx *sql.Tx) store.DictionaryStore {
	return &PostgresDictionaryStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.DictionaryStore.Create
func (s *PostgresDictionaryStore) Create(ctx context.Context, entry *domain.DictionaryEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("dictionary entry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	examples, err := json.Marshal(entry.Examples)
	if err != nil {
		log.Error("failed to marshal examples",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	query := `
		INSERT INTO dictionary_entries (id, balinese, latin, indonesian, category, level, examples, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.Balinese,
		entry.Latin,
		entry.Indonesian,
		entry.Category,
		entry.Level,
		examples,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create dictionary entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	log.Info("dictionary entry created successfully",
		slog.String("entry_id", entry.ID.String()),
		slog.String("latin", entry.Latin))
	return nil
}

// GetByID implements store.DictionaryStore.GetByID
// Returns store.ErrEntryNotFound if the entry does not exist.
func (s *PostgresDictionaryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.DictionaryEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectEntryColumns + ` WHERE id = $1`

	rows, err := s.queryEntries(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		log.Debug("dictionary entry not found", slog.String("entry_id", id.String()))
		return nil, store.ErrEntryNotFound
	}

	return rows[0], nil
}

// Search implements store.DictionaryStore.Search
// Matching is case-insensitive substring matching (ILIKE) across the
// Balinese script form, the Indonesian translation, and the Latin
// transliteration. Results carry no relevance ranking.
func (s *PostgresDictionaryStore) Search(
	ctx context.Context,
	query string,
	limit int,
) ([]*domain.DictionaryEntry, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	// Escape LIKE metacharacters so the query is treated literally.
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
	pattern := "%" + escaped + "%"

	sqlQuery := selectEntryColumns + `
		WHERE balinese ILIKE $1 OR indonesian ILIKE $1 OR latin ILIKE $1
		LIMIT $2
	`
	return s.queryEntries(ctx, sqlQuery, pattern, limit)
}

// ListByCategory implements store.DictionaryStore.ListByCategory
func (s *PostgresDictionaryStore) ListByCategory(
	ctx context.Context,
	category string,
) ([]*domain.DictionaryEntry, error) {
	query := selectEntryColumns + ` WHERE category = $1 ORDER BY balinese`
	return s.queryEntries(ctx, query, category)
}

// ListByLevel implements store.DictionaryStore.ListByLevel
func (s *PostgresDictionaryStore) ListByLevel(
	ctx context.Context,
	level int,
) ([]*domain.DictionaryEntry, error) {
	query := selectEntryColumns + ` WHERE level = $1 ORDER BY balinese`
	return s.queryEntries(ctx, query, level)
}

// ListCategories implements store.DictionaryStore.ListCategories
func (s *PostgresDictionaryStore) ListCategories(ctx context.Context) ([]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM dictionary_entries ORDER BY category`)
	if err != nil {
		log.Error("failed to query categories",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			log.Error("failed to scan category row",
				slog.String("error", err.Error()))
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return categories, nil
}

// Update implements store.DictionaryStore.Update
// The updated timestamp is stamped here.
// Returns store.ErrEntryNotFound if the entry does not exist.
func (s *PostgresDictionaryStore) Update(ctx context.Context, entry *domain.DictionaryEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("dictionary entry validation failed during update",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	examples, err := json.Marshal(entry.Examples)
	if err != nil {
		log.Error("failed to marshal examples",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	updatedAt := time.Now().UTC()

	query := `
		UPDATE dictionary_entries
		SET balinese = $1, latin = $2, indonesian = $3, category = $4,
		    level = $5, examples = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		entry.Balinese,
		entry.Latin,
		entry.Indonesian,
		entry.Category,
		entry.Level,
		examples,
		updatedAt,
		entry.ID,
	)

	if err != nil {
		log.Error("failed to update dictionary entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("dictionary entry not found for update",
			slog.String("entry_id", entry.ID.String()))
		return store.ErrEntryNotFound
	}

	entry.UpdatedAt = updatedAt

	log.Info("dictionary entry updated successfully",
		slog.String("entry_id", entry.ID.String()))
	return nil
}

// Delete implements store.DictionaryStore.Delete
// Returns store.ErrEntryNotFound if the entry does not exist.
func (s *PostgresDictionaryStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM dictionary_entries WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete dictionary entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("dictionary entry not found for delete",
			slog.String("entry_id", id.String()))
		return store.ErrEntryNotFound
	}

	log.Info("dictionary entry deleted successfully",
		slog.String("entry_id", id.String()))
	return nil
}

const selectEntryColumns = `
	SELECT id, balinese, latin, indonesian, category, level, examples, created_at, updated_at
	FROM dictionary_entries`

// queryEntries runs an entry query and scans all rows.
func (s *PostgresDictionaryStore) queryEntries(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.DictionaryEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query dictionary entries",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	entries := []*domain.DictionaryEntry{}
	for rows.Next() {
		var entry domain.DictionaryEntry
		var examples []byte

		err := rows.Scan(
			&entry.ID,
			&entry.Balinese,
			&entry.Latin,
			&entry.Indonesian,
			&entry.Category,
			&entry.Level,
			&examples,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan dictionary entry row",
				slog.String("error", err.Error()))
			return nil, err
		}

		if err := json.Unmarshal(examples, &entry.Examples); err != nil {
			log.Error("failed to unmarshal examples",
				slog.String("error", err.Error()),
				slog.String("entry_id", entry.ID.String()))
			return nil, err
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return entries, nil
}
