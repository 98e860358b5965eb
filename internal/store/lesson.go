package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
)

// LessonPatch enumerates the mutable lesson fields for partial updates.
// Nil fields are left unchanged. Content-defining fields (level, order,
// exercises) are not patchable; replacing content means replacing the lesson.
type LessonPatch struct {
	Title       *string
	Description *string
	Locked      *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p LessonPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Locked == nil
}

// LessonStore defines the interface for lesson data persistence.
// Exercises are embedded in their lesson and are stored and retrieved
// with it; they are not independently addressable.
type LessonStore interface {
	// Create saves a new lesson to the store.
	// It handles domain validation internally.
	// Returns ErrLessonOrderExists if the (level, order) slot is taken.
	Create(ctx context.Context, lesson *domain.Lesson) error

	// GetByID retrieves a lesson by its unique ID.
	// Returns ErrLessonNotFound if the lesson does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)

	// List retrieves all lessons ordered by level, then by order within
	// the level.
	List(ctx context.Context) ([]*domain.Lesson, error)

	// ListByLevel retrieves all lessons for a difficulty level, ordered by
	// their ordering index.
	ListByLevel(ctx context.Context, level int) ([]*domain.Lesson, error)

	// Update applies a typed partial patch to an existing lesson and stamps
	// the updated timestamp. Returns ErrLessonNotFound if no row was
	// modified.
	Update(ctx context.Context, id uuid.UUID, patch LessonPatch) error

	// Delete removes a lesson and its embedded exercises.
	// Returns ErrLessonNotFound if the lesson does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new LessonStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) LessonStore
}
