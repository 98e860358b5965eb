package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/domain/progression"
	"github.com/aksarabali/aksara-api/internal/store"
)

func TestRecordAttempt(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()
	lessonID := uuid.New()

	t.Run("records the attempt and updates the user", func(t *testing.T) {
		t.Parallel()
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		user := &domain.User{
			ID:         userID,
			Level:      1,
			Experience: 90,
			Streak:     5,
			UpdatedAt:  now.Add(-25 * time.Hour),
		}
		completedAt := now
		stored := &domain.UserProgress{
			ID:          uuid.New(),
			UserID:      userID,
			LessonID:    lessonID,
			Completed:   true,
			Score:       85,
			CompletedAt: &completedAt,
			Attempts:    1,
		}

		lessonStore := new(MockLessonStore)
		lessonStore.On("GetByID", mock.Anything, lessonID).
			Return(&domain.Lesson{ID: lessonID, Title: "Aksara Dasar", Level: 1, Order: 1}, nil)

		userStore := new(MockUserStore)
		userStore.On("GetByID", mock.Anything, userID).Return(user, nil)
		userStore.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			// 10 base + 85/10 = 18 XP on top of 90, and the streak continued.
			return u.Experience == 108 && u.Level == 2 && u.Streak == 6
		})).Return(nil)

		progressStore := new(MockProgressStore)
		progressStore.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.UserProgress) bool {
			return p.UserID == userID && p.LessonID == lessonID && p.Score == 85
		})).Return(stored, nil)

		svc := NewProgressService(
			progressStore, userStore, lessonStore,
			progression.NewDefaultService(), db, testLogger(),
		).WithClock(fixedClock(now))

		result, err := svc.RecordAttempt(context.Background(), userID, lessonID, 85)
		require.NoError(t, err)

		assert.Equal(t, stored, result.Progress)
		assert.Equal(t, 18, result.XPEarned)
		assert.Equal(t, 108, result.User.Experience)
		assert.Equal(t, 6, result.User.Streak)

		lessonStore.AssertExpectations(t)
		userStore.AssertExpectations(t)
		progressStore.AssertExpectations(t)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("invalid score never touches the stores", func(t *testing.T) {
		t.Parallel()
		lessonStore := new(MockLessonStore)
		userStore := new(MockUserStore)
		progressStore := new(MockProgressStore)

		svc := NewProgressService(
			progressStore, userStore, lessonStore,
			progression.NewDefaultService(), nil, testLogger(),
		)

		_, err := svc.RecordAttempt(context.Background(), userID, lessonID, 101)
		assert.ErrorIs(t, err, ErrInvalidInput)

		lessonStore.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		userStore.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		progressStore.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("missing lesson rolls back before any write", func(t *testing.T) {
		t.Parallel()
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		lessonStore := new(MockLessonStore)
		lessonStore.On("GetByID", mock.Anything, lessonID).Return(nil, store.ErrLessonNotFound)

		userStore := new(MockUserStore)
		progressStore := new(MockProgressStore)

		svc := NewProgressService(
			progressStore, userStore, lessonStore,
			progression.NewDefaultService(), db, testLogger(),
		).WithClock(fixedClock(now))

		_, err = svc.RecordAttempt(context.Background(), userID, lessonID, 85)
		assert.ErrorIs(t, err, store.ErrLessonNotFound)

		progressStore.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		userStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("clock skew still records the attempt", func(t *testing.T) {
		t.Parallel()
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		// Last update in the future relative to the injected clock.
		user := &domain.User{
			ID:         userID,
			Level:      1,
			Experience: 0,
			Streak:     5,
			UpdatedAt:  now.Add(48 * time.Hour),
		}
		stored := &domain.UserProgress{
			ID: uuid.New(), UserID: userID, LessonID: lessonID, Score: 40, Attempts: 1,
		}

		lessonStore := new(MockLessonStore)
		lessonStore.On("GetByID", mock.Anything, lessonID).
			Return(&domain.Lesson{ID: lessonID, Title: "Aksara Dasar", Level: 1, Order: 1}, nil)

		userStore := new(MockUserStore)
		userStore.On("GetByID", mock.Anything, userID).Return(user, nil)
		userStore.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Streak == 5 && u.Experience == 14
		})).Return(nil)

		progressStore := new(MockProgressStore)
		progressStore.On("Upsert", mock.Anything, mock.Anything).Return(stored, nil)

		svc := NewProgressService(
			progressStore, userStore, lessonStore,
			progression.NewDefaultService(), db, testLogger(),
		).WithClock(fixedClock(now))

		result, err := svc.RecordAttempt(context.Background(), userID, lessonID, 40)
		require.NoError(t, err)
		assert.Equal(t, 14, result.XPEarned)
		assert.Equal(t, 5, result.User.Streak, "streaks never decrement")

		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}

func TestGetLessonProgress(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	lessonID := uuid.New()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		progressStore := new(MockProgressStore)
		progressStore.On("Get", mock.Anything, userID, lessonID).
			Return(&domain.UserProgress{UserID: userID, LessonID: lessonID, Score: 70}, nil)

		svc := NewProgressService(
			progressStore, new(MockUserStore), new(MockLessonStore),
			progression.NewDefaultService(), nil, testLogger(),
		)

		progress, err := svc.GetLessonProgress(context.Background(), userID, lessonID)
		require.NoError(t, err)
		assert.Equal(t, 70, progress.Score)
	})

	t.Run("not started", func(t *testing.T) {
		t.Parallel()
		progressStore := new(MockProgressStore)
		progressStore.On("Get", mock.Anything, userID, lessonID).
			Return(nil, store.ErrProgressNotFound)

		svc := NewProgressService(
			progressStore, new(MockUserStore), new(MockLessonStore),
			progression.NewDefaultService(), nil, testLogger(),
		)

		_, err := svc.GetLessonProgress(context.Background(), userID, lessonID)
		assert.ErrorIs(t, err, store.ErrProgressNotFound)
	})
}

func TestListUserProgress(t *testing.T) {
	t.Parallel()
	userID := uuid.New()

	progressStore := new(MockProgressStore)
	progressStore.On("ListByUser", mock.Anything, userID).
		Return([]*domain.UserProgress{
			{UserID: userID, LessonID: uuid.New(), Score: 90, Attempts: 1},
			{UserID: userID, LessonID: uuid.New(), Score: 55, Attempts: 3},
		}, nil)

	svc := NewProgressService(
		progressStore, new(MockUserStore), new(MockLessonStore),
		progression.NewDefaultService(), nil, testLogger(),
	)

	records, err := svc.ListUserProgress(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
