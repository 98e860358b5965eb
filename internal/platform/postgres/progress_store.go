package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/platform/logger"
	"github.com/aksarabali/aksara-api/internal/store"
)

// PostgresProgressStore implements the store.ProgressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProgressStore creates a new PostgreSQL implementation of the
// ProgressStore interface. If logger is nil, a default logger will be used.
func NewPostgresProgressStore(db store.DBTX, log *slog.Logger) *PostgresProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresProgressStore{
		db:     db,
		logger: log.With(slog.String("component", "progress_store")),
	}
}

// Ensure PostgresProgressStore implements store.ProgressStore interface
var _ store.ProgressStore = (*PostgresProgressStore)(nil)

// WithTx implements store.ProgressStore.WithTx
func (s *PostgresProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &PostgresProgressStore{
		db:     tx,
		logger: s.logger,
	}
}

// Get implements store.ProgressStore.Get
// Returns store.ErrProgressNotFound if no record exists for the pair;
// callers treat that as "no progress yet".
func (s *PostgresProgressStore) Get(
	ctx context.Context,
	userID, lessonID uuid.UUID,
) (*domain.UserProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, lesson_id, completed, score, completed_at, attempts, created_at, updated_at
		FROM user_progress
		WHERE user_id = $1 AND lesson_id = $2
	`

	progress, err := scanProgress(s.db.QueryRowContext(ctx, query, userID, lessonID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no progress record for pair",
				slog.String("user_id", userID.String()),
				slog.String("lesson_id", lessonID.String()))
			return nil, store.ErrProgressNotFound
		}
		log.Error("failed to get progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("lesson_id", lessonID.String()))
		return nil, err
	}

	return progress, nil
}

// ListByUser implements store.ProgressStore.ListByUser
func (s *PostgresProgressStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.UserProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, lesson_id, completed, score, completed_at, attempts, created_at, updated_at
		FROM user_progress
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query progress by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	records := []*domain.UserProgress{}
	for rows.Next() {
		var progress domain.UserProgress
		err := rows.Scan(
			&progress.ID,
			&progress.UserID,
			&progress.LessonID,
			&progress.Completed,
			&progress.Score,
			&progress.CompletedAt,
			&progress.Attempts,
			&progress.CreatedAt,
			&progress.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan progress row",
				slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, &progress)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return records, nil
}

// Upsert implements store.ProgressStore.Upsert
//
// The whole read-modify-write collapses into one conditional statement so
// that two concurrent attempts on the same (user, lesson) pair cannot lose
// updates: the existing row keeps the best score (GREATEST), completion is
// sticky (OR), the earliest completion timestamp wins (COALESCE of the
// stored value first), and attempts always increments by one per call.
// Returns store.ErrInvalidEntity if the user or lesson ID does not resolve.
func (s *PostgresProgressStore) Upsert(
	ctx context.Context,
	progress *domain.UserProgress,
) (*domain.UserProgress, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := progress.Validate(); err != nil {
		log.Warn("progress validation failed during upsert",
			slog.String("error", err.Error()),
			slog.String("user_id", progress.UserID.String()),
			slog.String("lesson_id", progress.LessonID.String()))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	now := time.Now().UTC()

	query := `
		INSERT INTO user_progress (id, user_id, lesson_id, completed, score, completed_at, attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7, $7)
		ON CONFLICT (user_id, lesson_id) DO UPDATE SET
			score        = GREATEST(user_progress.score, EXCLUDED.score),
			completed    = user_progress.completed OR EXCLUDED.completed,
			completed_at = COALESCE(user_progress.completed_at, EXCLUDED.completed_at),
			attempts     = user_progress.attempts + 1,
			updated_at   = EXCLUDED.updated_at
		RETURNING id, user_id, lesson_id, completed, score, completed_at, attempts, created_at, updated_at
	`

	var completedAt *time.Time
	if progress.Completed {
		completedAt = &now
	}

	stored, err := scanProgress(s.db.QueryRowContext(
		ctx,
		query,
		progress.ID,
		progress.UserID,
		progress.LessonID,
		progress.Completed,
		progress.Score,
		completedAt,
		now,
	))

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during progress upsert",
				slog.String("error", err.Error()),
				slog.String("user_id", progress.UserID.String()),
				slog.String("lesson_id", progress.LessonID.String()))
			return nil, fmt.Errorf("%w: user or lesson does not exist",
				store.ErrInvalidEntity)
		}

		log.Error("failed to upsert progress",
			slog.String("error", err.Error()),
			slog.String("user_id", progress.UserID.String()),
			slog.String("lesson_id", progress.LessonID.String()))
		return nil, err
	}

	log.Info("progress recorded",
		slog.String("user_id", stored.UserID.String()),
		slog.String("lesson_id", stored.LessonID.String()),
		slog.Int("score", stored.Score),
		slog.Int("attempts", stored.Attempts),
		slog.Bool("completed", stored.Completed))
	return stored, nil
}

// Delete implements store.ProgressStore.Delete
// Returns store.ErrProgressNotFound if no record exists for the pair.
func (s *PostgresProgressStore) Delete(ctx context.Context, userID, lessonID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM user_progress WHERE user_id = $1 AND lesson_id = $2`,
		userID, lessonID)
	if err != nil {
		log.Error("failed to delete progress",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("lesson_id", lessonID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("progress not found for delete",
			slog.String("user_id", userID.String()),
			slog.String("lesson_id", lessonID.String()))
		return store.ErrProgressNotFound
	}

	log.Info("progress deleted",
		slog.String("user_id", userID.String()),
		slog.String("lesson_id", lessonID.String()))
	return nil
}

// scanProgress scans a single progress row.
func scanProgress(row *sql.Row) (*domain.UserProgress, error) {
	var progress domain.UserProgress
	err := row.Scan(
		&progress.ID,
		&progress.UserID,
		&progress.LessonID,
		&progress.Completed,
		&progress.Score,
		&progress.CompletedAt,
		&progress.Attempts,
		&progress.CreatedAt,
		&progress.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
