// Package progression implements the progression rules of the application
// as pure functions of (current state, event) -> new state. It never touches
// storage: callers persist the returned entities.
package progression

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
)

// Common errors
var (
	ErrNilUser        = errors.New("user cannot be nil")
	ErrNegativeAmount = errors.New("experience amount cannot be negative")
	ErrInvalidScore   = errors.New("score must be between 0 and 100")

	// ErrClockSkew is returned by UpdateStreak when the reference time is
	// before the user's last update. The user is returned unchanged; the
	// caller decides whether to warn. Streaks never decrement.
	ErrClockSkew = errors.New("reference time is before last update")
)

// Service defines the interface for progression rule operations.
// All methods follow immutability principles: they return new instances
// rather than modifying their arguments.
type Service interface {
	// AwardExperience adds a non-negative amount of experience to the user
	// and recomputes the level from the new total.
	AwardExperience(user *domain.User, amount int, now time.Time) (*domain.User, error)

	// UpdateStreak transitions the user's consecutive-day streak for an
	// activity happening at now, keyed off the user's UpdatedAt timestamp.
	UpdateStreak(user *domain.User, now time.Time) (*domain.User, error)

	// RecordAttempt computes the next state of a progress record for a
	// lesson attempt. existing may be nil when the user has no progress on
	// the lesson yet.
	RecordAttempt(
		existing *domain.UserProgress,
		userID, lessonID uuid.UUID,
		score int,
		now time.Time,
	) (*domain.UserProgress, error)

	// LevelForExperience derives the level for an experience total.
	LevelForExperience(experience int) int

	// PassThreshold reports the minimum passing score.
	PassThreshold() int
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new progression service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new progression service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// AwardExperience implements the Service interface.
func (s *defaultService) AwardExperience(
	user *domain.User,
	amount int,
	now time.Time,
) (*domain.User, error) {
	if user == nil {
		return nil, ErrNilUser
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	return applyExperience(user, amount, now, s.params), nil
}

// UpdateStreak implements the Service interface.
//
// Same-day activity leaves the streak and timestamps unchanged, so repeated
// calls within one day are idempotent. A negative day difference (clock
// skew) returns the user unchanged together with ErrClockSkew rather than
// silently decrementing.
func (s *defaultService) UpdateStreak(user *domain.User, now time.Time) (*domain.User, error) {
	if user == nil {
		return nil, ErrNilUser
	}

	daysDiff := daysBetween(user.UpdatedAt, now)
	if daysDiff < 0 {
		newUser := *user
		return &newUser, ErrClockSkew
	}

	return applyStreak(user, daysDiff, now), nil
}

// RecordAttempt implements the Service interface.
func (s *defaultService) RecordAttempt(
	existing *domain.UserProgress,
	userID, lessonID uuid.UUID,
	score int,
	now time.Time,
) (*domain.UserProgress, error) {
	if score < 0 || score > 100 {
		return nil, ErrInvalidScore
	}
	if userID == uuid.Nil {
		return nil, domain.ErrEmptyProgressUserID
	}
	if lessonID == uuid.Nil {
		return nil, domain.ErrEmptyProgressLessonID
	}

	return applyAttempt(existing, userID, lessonID, score, now, s.params), nil
}

// LevelForExperience implements the Service interface.
func (s *defaultService) LevelForExperience(experience int) int {
	return levelForExperience(experience, s.params)
}

// PassThreshold implements the Service interface.
func (s *defaultService) PassThreshold() int {
	return s.params.PassThreshold
}
