package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/platform/logger"
	"github.com/aksarabali/aksara-api/internal/store"
)

// PostgresLessonStore implements the store.LessonStore interface
// using a PostgreSQL database as the storage backend.
// Exercises are embedded in the lesson row as a JSONB column.
type PostgresLessonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLessonStore creates a new PostgreSQL implementation of the
// LessonStore interface. If logger is nil, a default logger will be used.
func NewPostgresLessonStore(db store.DBTX, log *slog.Logger) *PostgresLessonStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresLessonStore{
		db:     db,
		logger: log.With(slog.String("component", "lesson_store")),
	}
}

// Ensure PostgresLessonStore implements store.LessonStore interface
var _ store.LessonStore = (*PostgresLessonStore)(nil)

// WithTx implements store.LessonStore.WithTx
func (s *PostgresLessonStore) WithTx(tx *sql.Tx) store.LessonStore {
	return &PostgresLessonStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.LessonStore.Create
// Returns store.ErrLessonOrderExists if the (level, order) slot is taken.
func (s *PostgresLessonStore) Create(ctx context.Context, lesson *domain.Lesson) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := lesson.Validate(); err != nil {
		log.Warn("lesson validation failed during create",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lesson.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	exercises, err := json.Marshal(lesson.Exercises)
	if err != nil {
		log.Error("failed to marshal exercises",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lesson.ID.String()))
		return err
	}

	query := `
		INSERT INTO lessons (id, title, description, level, "order", locked, exercises, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		lesson.ID,
		lesson.Title,
		lesson.Description,
		lesson.Level,
		lesson.Order,
		lesson.Locked,
		exercises,
		lesson.CreatedAt,
		lesson.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "") {
			log.Debug("lesson order already taken",
				slog.Int("level", lesson.Level),
				slog.Int("order", lesson.Order))
			return store.ErrLessonOrderExists
		}

		log.Error("failed to create lesson",
			slog.String("error", err.Error()),
			slog.String("lesson_id", lesson.ID.String()))
		return err
	}

	log.Info("lesson created successfully",
		slog.String("lesson_id", lesson.ID.String()),
		slog.Int("level", lesson.Level),
		slog.Int("order", lesson.Order))
	return nil
}

// GetByID implements store.LessonStore.GetByID
// Returns store.ErrLessonNotFound if the lesson does not exist.
func (s *PostgresLessonStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, level, "order", locked, exercises, created_at, updated_at
		FROM lessons
		WHERE id = $1
	`

	var lesson domain.Lesson
	var exercises []byte

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&lesson.ID,
		&lesson.Title,
		&lesson.Description,
		&lesson.Level,
		&lesson.Order,
		&lesson.Locked,
		&exercises,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("lesson not found", slog.String("lesson_id", id.String()))
			return nil, store.ErrLessonNotFound
		}
		log.Error("failed to get lesson by ID",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return nil, err
	}

	if err := json.Unmarshal(exercises, &lesson.Exercises); err != nil {
		log.Error("failed to unmarshal exercises",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return nil, err
	}

	return &lesson, nil
}

// List implements store.LessonStore.List
// Lessons come back ordered by level, then by order within the level.
func (s *PostgresLessonStore) List(ctx context.Context) ([]*domain.Lesson, error) {
	query := `
		SELECT id, title, description, level, "order", locked, exercises, created_at, updated_at
		FROM lessons
		ORDER BY level, "order"
	`
	return s.queryLessons(ctx, query)
}

// ListByLevel implements store.LessonStore.ListByLevel
func (s *PostgresLessonStore) ListByLevel(ctx context.Context, level int) ([]*domain.Lesson, error) {
	query := `
		SELECT id, title, description, level, "order", locked, exercises, created_at, updated_at
		FROM lessons
		WHERE level = $1
		ORDER BY "order"
	`
	return s.queryLessons(ctx, query, level)
}

// Update implements store.LessonStore.Update
// Only the fields named in the patch are touched; unknown fields cannot be
// smuggled in because the patch type is closed. The updated timestamp is
// stamped here. Returns store.ErrLessonNotFound if no row was modified.
func (s *PostgresLessonStore) Update(ctx context.Context, id uuid.UUID, patch store.LessonPatch) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if patch.IsEmpty() {
		log.Debug("empty lesson patch, nothing to update",
			slog.String("lesson_id", id.String()))
		return nil
	}

	var sets []string
	var args []any

	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, "title = $"+strconv.Itoa(len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, "description = $"+strconv.Itoa(len(args)))
	}
	if patch.Locked != nil {
		args = append(args, *patch.Locked)
		sets = append(sets, "locked = $"+strconv.Itoa(len(args)))
	}

	args = append(args, time.Now().UTC())
	sets = append(sets, "updated_at = $"+strconv.Itoa(len(args)))

	args = append(args, id)
	query := "UPDATE lessons SET " + strings.Join(sets, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update lesson",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("lesson not found for update",
			slog.String("lesson_id", id.String()))
		return store.ErrLessonNotFound
	}

	log.Info("lesson updated successfully",
		slog.String("lesson_id", id.String()))
	return nil
}

// Delete implements store.LessonStore.Delete
// Returns store.ErrLessonNotFound if the lesson does not exist.
func (s *PostgresLessonStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete lesson",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("lesson_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("lesson not found for delete",
			slog.String("lesson_id", id.String()))
		return store.ErrLessonNotFound
	}

	log.Info("lesson deleted successfully",
		slog.String("lesson_id", id.String()))
	return nil
}

// queryLessons runs a lesson query and scans all rows.
func (s *PostgresLessonStore) queryLessons(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query lessons",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	lessons := []*domain.Lesson{}
	for rows.Next() {
		var lesson domain.Lesson
		var exercises []byte

		err := rows.Scan(
			&lesson.ID,
			&lesson.Title,
			&lesson.Description,
			&lesson.Level,
			&lesson.Order,
			&lesson.Locked,
			&exercises,
			&lesson.CreatedAt,
			&lesson.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan lesson row",
				slog.String("error", err.Error()))
			return nil, err
		}

		if err := json.Unmarshal(exercises, &lesson.Exercises); err != nil {
			log.Error("failed to unmarshal exercises",
				slog.String("error", err.Error()),
				slog.String("lesson_id", lesson.ID.String()))
			return nil, err
		}

		lessons = append(lessons, &lesson)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return lessons, nil
}
