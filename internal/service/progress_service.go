package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/domain/progression"
	"github.com/aksarabali/aksara-api/internal/store"
)

// baseAttemptXP is awarded for any recorded attempt; the score adds up to
// ten more points on top (score/10). A perfect score earns 20 XP.
const baseAttemptXP = 10

// AttemptResult bundles the outcome of a recorded lesson attempt: the
// stored progress record and the user after experience and streak updates.
type AttemptResult struct {
	Progress *domain.UserProgress `json:"progress"`
	User     *domain.User         `json:"user"`
	XPEarned int                  `json:"xp_earned"`
}

// ProgressService records lesson attempts and reads progress state.
type ProgressService interface {
	// RecordAttempt records one attempt of a lesson with the given score.
	// In a single transaction it upserts the progress record (best score,
	// sticky completion, attempt counter), awards experience for the
	// attempt, and updates the user's streak.
	RecordAttempt(ctx context.Context, userID, lessonID uuid.UUID, score int) (*AttemptResult, error)

	// GetLessonProgress retrieves the progress record for a (user, lesson)
	// pair. Returns store.ErrProgressNotFound when the lesson has not been
	// started; callers treat that as a valid state, not a failure.
	GetLessonProgress(ctx context.Context, userID, lessonID uuid.UUID) (*domain.UserProgress, error)

	// ListUserProgress retrieves all progress records for a user.
	ListUserProgress(ctx context.Context, userID uuid.UUID) ([]*domain.UserProgress, error)
}

// ProgressServiceImpl implements the ProgressService interface.
type ProgressServiceImpl struct {
	progressStore store.ProgressStore
	userStore     store.UserStore
	lessonStore   store.LessonStore
	rules         progression.Service
	db            *sql.DB
	logger        *slog.Logger
	now           func() time.Time
}

// NewProgressService creates a new ProgressService.
func NewProgressService(
	progressStore store.ProgressStore,
	userStore store.UserStore,
	lessonStore store.LessonStore,
	rules progression.Service,
	db *sql.DB,
	logger *slog.Logger,
) *ProgressServiceImpl {
	return &ProgressServiceImpl{
		progressStore: progressStore,
		userStore:     userStore,
		lessonStore:   lessonStore,
		rules:         rules,
		db:            db,
		logger:        logger.With(slog.String("component", "progress_service")),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the service's clock. Used by tests to inject a fixed
// time.
func (s *ProgressServiceImpl) WithClock(now func() time.Time) *ProgressServiceImpl {
	s.now = now
	return s
}

// RecordAttempt records one attempt of a lesson with the given score.
//
// The score is validated before any persistence call. The progress write is
// a single conditional upsert, so concurrent attempts on the same pair
// serialize at the row and the best-score/sticky-completion invariants hold
// without an application-level lock. Experience and the streak update ride
// in the same transaction; a backwards clock downgrades the streak update
// to a warning.
func (s *ProgressServiceImpl) RecordAttempt(
	ctx context.Context,
	userID, lessonID uuid.UUID,
	score int,
) (*AttemptResult, error) {
	now := s.now()

	// Fail fast: the rules engine rejects invalid scores and IDs before
	// anything touches the database.
	attempt, err := s.rules.RecordAttempt(nil, userID, lessonID, score, now)
	if err != nil {
		s.logger.Warn("rejected invalid attempt",
			"error", err,
			"user_id", userID,
			"lesson_id", lessonID,
			"score", score)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var result AttemptResult
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txProgress := s.progressStore.WithTx(tx)
		txUsers := s.userStore.WithTx(tx)
		txLessons := s.lessonStore.WithTx(tx)

		// The lesson must exist; its absence is a caller error, not a
		// foreign key surprise at upsert time.
		if _, err := txLessons.GetByID(ctx, lessonID); err != nil {
			return err
		}

		user, err := txUsers.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		stored, err := txProgress.Upsert(ctx, attempt)
		if err != nil {
			return err
		}
		result.Progress = stored

		// Streak first: awarding experience stamps UpdatedAt, which is the
		// timestamp the streak transition keys off.
		streaked, err := s.rules.UpdateStreak(user, now)
		if errors.Is(err, progression.ErrClockSkew) {
			s.logger.Warn("clock skew detected during attempt, streak unchanged",
				"user_id", userID,
				"last_updated", user.UpdatedAt)
			streaked = user
		} else if err != nil {
			return err
		}

		xp := baseAttemptXP + score/10
		updated, err := s.rules.AwardExperience(streaked, xp, now)
		if err != nil {
			return err
		}
		result.XPEarned = xp

		if err := txUsers.Update(ctx, updated); err != nil {
			return err
		}
		result.User = updated
		return nil
	})
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to record attempt",
				"error", err,
				"user_id", userID,
				"lesson_id", lessonID)
		}
		return nil, err
	}

	s.logger.Info("attempt recorded",
		"user_id", userID,
		"lesson_id", lessonID,
		"score", score,
		"best_score", result.Progress.Score,
		"attempts", result.Progress.Attempts,
		"completed", result.Progress.Completed,
		"xp_earned", result.XPEarned)
	return &result, nil
}

// GetLessonProgress retrieves the progress record for a (user, lesson) pair.
func (s *ProgressServiceImpl) GetLessonProgress(
	ctx context.Context,
	userID, lessonID uuid.UUID,
) (*domain.UserProgress, error) {
	progress, err := s.progressStore.Get(ctx, userID, lessonID)
	if err != nil {
		if !errors.Is(err, store.ErrProgressNotFound) {
			s.logger.Error("failed to retrieve progress",
				"error", err,
				"user_id", userID,
				"lesson_id", lessonID)
		}
		return nil, err
	}
	return progress, nil
}

// ListUserProgress retrieves all progress records for a user.
func (s *ProgressServiceImpl) ListUserProgress(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.UserProgress, error) {
	records, err := s.progressStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list progress",
			"error", err,
			"user_id", userID)
		return nil, err
	}
	return records, nil
}

// Ensure ProgressServiceImpl implements ProgressService
var _ ProgressService = (*ProgressServiceImpl)(nil)
