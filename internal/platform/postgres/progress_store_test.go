package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/store"
)

var progressColumns = []string{
	"id", "user_id", "lesson_id", "completed", "score",
	"completed_at", "attempts", "created_at", "updated_at",
}

func TestProgressStoreGet(t *testing.T) {
	userID := uuid.New()
	lessonID := uuid.New()
	now := time.Now().UTC()

	t.Run("returns the stored record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		progressStore := NewPostgresProgressStore(db, nil)

		mock.ExpectQuery(`FROM user_progress`).
			WithArgs(userID, lessonID).
			WillReturnRows(sqlmock.NewRows(progressColumns).
				AddRow(uuid.New(), userID, lessonID, false, 70, nil, 2, now, now))

		progress, err := progressStore.Get(context.Background(), userID, lessonID)
		require.NoError(t, err)
		assert.Equal(t, 70, progress.Score)
		assert.Equal(t, 2, progress.Attempts)
		assert.Nil(t, progress.CompletedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing pair maps to ErrProgressNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		progressStore := NewPostgresProgressStore(db, nil)

		mock.ExpectQuery(`FROM user_progress`).
			WithArgs(userID, lessonID).
			WillReturnRows(sqlmock.NewRows(progressColumns))

		_, err = progressStore.Get(context.Background(), userID, lessonID)
		assert.ErrorIs(t, err, store.ErrProgressNotFound)
	})
}

func TestProgressStoreUpsert(t *testing.T) {
	userID := uuid.New()
	lessonID := uuid.New()
	now := time.Now().UTC()

	t.Run("returns the row the database resolved", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		progressStore := NewPostgresProgressStore(db, nil)

		attempt := &domain.UserProgress{
			ID:        uuid.New(),
			UserID:    userID,
			LessonID:  lessonID,
			Completed: false,
			Score:     40,
			Attempts:  1,
			CreatedAt: now,
			UpdatedAt: now,
		}

		// The database keeps the stored best score and bumps attempts; the
		// returned record reflects the resolved row, not the input.
		completedAt := now.Add(-time.Hour)
		mock.ExpectQuery(`INSERT INTO user_progress`).
			WillReturnRows(sqlmock.NewRows(progressColumns).
				AddRow(attempt.ID, userID, lessonID, true, 90, completedAt, 3, now, now))

		stored, err := progressStore.Upsert(context.Background(), attempt)
		require.NoError(t, err)
		assert.Equal(t, 90, stored.Score)
		assert.Equal(t, 3, stored.Attempts)
		assert.True(t, stored.Completed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid record never reaches the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		progressStore := NewPostgresProgressStore(db, nil)

		invalid := &domain.UserProgress{
			ID:       uuid.New(),
			UserID:   userID,
			LessonID: lessonID,
			Score:    150,
		}

		_, err = progressStore.Upsert(context.Background(), invalid)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProgressStoreDelete(t *testing.T) {
	userID := uuid.New()
	lessonID := uuid.New()

	t.Run("deletes the record", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		progressStore := NewPostgresProgressStore(db, nil)

		mock.ExpectExec(`DELETE FROM user_progress`).
			WithArgs(userID, lessonID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, progressStore.Delete(context.Background(), userID, lessonID))
	})

	t.Run("no rows maps to ErrProgressNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		progressStore := NewPostgresProgressStore(db, nil)

		mock.ExpectExec(`DELETE FROM user_progress`).
			WithArgs(userID, lessonID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = progressStore.Delete(context.Background(), userID, lessonID)
		assert.ErrorIs(t, err, store.ErrProgressNotFound)
	})
}
