package progression

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
)

// levelForExperience derives the level for an experience total.
// Levels start at 1 and advance every params.XPPerLevel experience points,
// so 0-99 XP is level 1, 100-199 is level 2, and so on with the defaults.
func levelForExperience(experience int, params *Params) int {
	if experience < 0 {
		return 1
	}
	return experience/params.XPPerLevel + 1
}

// applyExperience creates a new User with the awarded experience added and
// the level recomputed from the new total. The level is never adjusted by
// any other path; it is always derived from experience here.
func applyExperience(user *domain.User, amount int, now time.Time, params *Params) *domain.User {
	newUser := *user
	newUser.Experience = user.Experience + amount
	newUser.Level = levelForExperience(newUser.Experience, params)
	newUser.UpdatedAt = now
	return &newUser
}

// daysBetween returns the whole number of days elapsed from one instant to
// another, rounding toward negative infinity. A negative result means the
// clock moved backwards relative to the stored timestamp.
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// applyStreak creates a new User with the streak transitioned for an
// activity happening at now:
//
//   - same day (daysDiff == 0): streak unchanged, timestamps untouched, so
//     repeated same-day calls are idempotent
//   - next day (daysDiff == 1): streak continues and increments
//   - gap (daysDiff > 1): streak is broken; today counts as day one of a
//     new streak, so it resets to 1, not 0
//
// Callers must reject negative daysDiff before calling; this function
// assumes a non-negative day difference.
func applyStreak(user *domain.User, daysDiff int, now time.Time) *domain.User {
	newUser := *user

	switch {
	case daysDiff == 0:
		return &newUser
	case daysDiff == 1:
		newUser.Streak = user.Streak + 1
	default:
		newUser.Streak = 1
	}

	newUser.UpdatedAt = now
	return &newUser
}

// applyAttempt computes the next state of a progress record after a lesson
// attempt with the given score.
//
// With no prior record, a fresh one is created with a single attempt. With a
// prior record, the best score is retained, the attempt counter always
// increments, and completion is sticky: once reached it is never reverted by
// a lower-scoring attempt. CompletedAt is set only on the transition from
// not-completed to completed.
func applyAttempt(
	existing *domain.UserProgress,
	userID, lessonID uuid.UUID,
	score int,
	now time.Time,
	params *Params,
) *domain.UserProgress {
	passed := score >= params.PassThreshold

	if existing == nil {
		progress := &domain.UserProgress{
			ID:        uuid.New(),
			UserID:    userID,
			LessonID:  lessonID,
			Completed: passed,
			Score:     score,
			Attempts:  1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if passed {
			completedAt := now
			progress.CompletedAt = &completedAt
		}
		return progress
	}

	progress := *existing

	if score > progress.Score {
		progress.Score = score
	}

	if passed && !existing.Completed {
		progress.Completed = true
		completedAt := now
		progress.CompletedAt = &completedAt
	}

	progress.Attempts = existing.Attempts + 1
	progress.UpdatedAt = now

	return &progress
}
