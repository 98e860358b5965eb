package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/store"
)

// LessonService provides lesson management operations.
type LessonService interface {
	// CreateLesson creates a new lesson with its embedded exercises.
	CreateLesson(
		ctx context.Context,
		title, description string,
		level, order int,
		locked bool,
		exercises []domain.Exercise,
	) (*domain.Lesson, error)

	// GetLesson retrieves a lesson by its ID.
	GetLesson(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)

	// ListLessons retrieves all lessons, ordered by level then order.
	ListLessons(ctx context.Context) ([]*domain.Lesson, error)

	// ListLessonsByLevel retrieves the lessons of one difficulty level.
	ListLessonsByLevel(ctx context.Context, level int) ([]*domain.Lesson, error)

	// UpdateLesson applies a typed partial patch to a lesson.
	UpdateLesson(ctx context.Context, id uuid.UUID, patch store.LessonPatch) (*domain.Lesson, error)

	// DeleteLesson removes a lesson and its exercises.
	DeleteLesson(ctx context.Context, id uuid.UUID) error
}

// LessonServiceImpl implements the LessonService interface.
type LessonServiceImpl struct {
	lessonStore store.LessonStore
	logger      *slog.Logger
}

// NewLessonService creates a new LessonService.
func NewLessonService(lessonStore store.LessonStore, logger *slog.Logger) *LessonServiceImpl {
	return &LessonServiceImpl{
		lessonStore: lessonStore,
		logger:      logger.With(slog.String("component", "lesson_service")),
	}
}

// CreateLesson creates a new lesson with its embedded exercises.
func (s *LessonServiceImpl) CreateLesson(
	ctx context.Context,
	title, description string,
	level, order int,
	locked bool,
	exercises []domain.Exercise,
) (*domain.Lesson, error) {
	lesson, err := domain.NewLesson(title, description, level, order, locked, exercises)
	if err != nil {
		s.logger.Warn("rejected invalid lesson input",
			"error", err,
			"title", title)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.lessonStore.Create(ctx, lesson); err != nil {
		if errors.Is(err, store.ErrLessonOrderExists) {
			s.logger.Debug("lesson order slot already taken",
				"level", level,
				"order", order)
		} else {
			s.logger.Error("failed to save lesson",
				"error", err,
				"title", title)
		}
		return nil, err
	}

	s.logger.Info("lesson created",
		"lesson_id", lesson.ID,
		"level", lesson.Level,
		"order", lesson.Order)
	return lesson, nil
}

// GetLesson retrieves a lesson by its ID.
func (s *LessonServiceImpl) GetLesson(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	lesson, err := s.lessonStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrLessonNotFound) {
			s.logger.Error("failed to retrieve lesson",
				"error", err,
				"lesson_id", id)
		}
		return nil, err
	}
	return lesson, nil
}

// ListLessons retrieves all lessons, ordered by level then order.
func (s *LessonServiceImpl) ListLessons(ctx context.Context) ([]*domain.Lesson, error) {
	lessons, err := s.lessonStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list lessons", "error", err)
		return nil, err
	}
	return lessons, nil
}

// ListLessonsByLevel retrieves the lessons of one difficulty level.
func (s *LessonServiceImpl) ListLessonsByLevel(ctx context.Context, level int) ([]*domain.Lesson, error) {
	if level < 1 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrInvalidLessonLevel)
	}

	lessons, err := s.lessonStore.ListByLevel(ctx, level)
	if err != nil {
		s.logger.Error("failed to list lessons by level",
			"error", err,
			"level", level)
		return nil, err
	}
	return lessons, nil
}

// UpdateLesson applies a typed partial patch to a lesson and returns the
// updated lesson.
func (s *LessonServiceImpl) UpdateLesson(
	ctx context.Context,
	id uuid.UUID,
	patch store.LessonPatch,
) (*domain.Lesson, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.ErrEmptyLessonTitle)
	}

	if err := s.lessonStore.Update(ctx, id, patch); err != nil {
		if !errors.Is(err, store.ErrLessonNotFound) {
			s.logger.Error("failed to update lesson",
				"error", err,
				"lesson_id", id)
		}
		return nil, err
	}

	return s.lessonStore.GetByID(ctx, id)
}

// DeleteLesson removes a lesson and its exercises.
func (s *LessonServiceImpl) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	if err := s.lessonStore.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrLessonNotFound) {
			s.logger.Error("failed to delete lesson",
				"error", err,
				"lesson_id", id)
		}
		return err
	}

	s.logger.Info("lesson deleted", "lesson_id", id)
	return nil
}

// Ensure LessonServiceImpl implements LessonService
var _ LessonService = (*LessonServiceImpl)(nil)
