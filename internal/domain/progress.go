package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for UserProgress.
var (
	ErrEmptyProgressID       = errors.New("progress ID cannot be empty")
	ErrEmptyProgressUserID   = errors.New("progress user ID cannot be empty")
	ErrEmptyProgressLessonID = errors.New("progress lesson ID cannot be empty")
	ErrNegativeAttempts      = errors.New("attempts cannot be negative")
	ErrMissingCompletedAt    = errors.New("completed progress must have a completion timestamp")
)

// UserProgress tracks one user's relationship to one lesson. At most one
// record exists per (user, lesson) pair; it is an upsert target, not an
// append log.
//
// Score is the best score ever achieved. Completed becomes true permanently
// once a passing score is recorded and is never reverted by a later,
// lower-scoring attempt. CompletedAt is set only the first time the pass
// threshold is met.
type UserProgress struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	LessonID    uuid.UUID  `json:"lesson_id"`
	Completed   bool       `json:"completed"`
	Score       int        `json:"score"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Attempts    int        `json:"attempts"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Validate checks if the UserProgress has valid data.
func (p *UserProgress) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProgressID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyProgressUserID
	}

	if p.LessonID == uuid.Nil {
		return ErrEmptyProgressLessonID
	}

	if p.Score < 0 || p.Score > 100 {
		return ErrInvalidScore
	}

	if p.Attempts < 0 {
		return ErrNegativeAttempts
	}

	if p.Completed && p.CompletedAt == nil {
		return ErrMissingCompletedAt
	}

	return nil
}
