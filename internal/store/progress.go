package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
)

// ProgressStore defines the interface for user progress persistence.
// At most one record exists per (user, lesson) pair.
type ProgressStore interface {
	// Get retrieves the progress record for a (user, lesson) pair.
	// Returns ErrProgressNotFound if no record exists; callers treat that
	// as "no progress yet", not as a failure.
	Get(ctx context.Context, userID, lessonID uuid.UUID) (*domain.UserProgress, error)

	// ListByUser retrieves all progress records for a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.UserProgress, error)

	// Upsert writes an attempt's outcome keyed by (user, lesson) as a
	// single conditional insert-or-update. When a row already exists the
	// store keeps the best score, ORs the completion flag (completion is
	// sticky), keeps the earliest completion timestamp, and increments the
	// attempt counter — atomically, so concurrent attempts on the same
	// pair cannot lose updates. Returns the stored record.
	Upsert(ctx context.Context, progress *domain.UserProgress) (*domain.UserProgress, error)

	// Delete removes the progress record for a (user, lesson) pair.
	// Returns ErrProgressNotFound if no record exists.
	Delete(ctx context.Context, userID, lessonID uuid.UUID) error

	// WithTx returns a new ProgressStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) ProgressStore
}
