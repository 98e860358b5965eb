package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/service"
	"github.com/aksarabali/aksara-api/internal/store"
)

// MockUserService mocks the service.UserService interface.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, email, name string) (*domain.User, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AwardExperience(
	ctx context.Context,
	userID uuid.UUID,
	amount int,
) (*domain.User, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateStreak(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AdjustHearts(
	ctx context.Context,
	userID uuid.UUID,
	delta int,
) (*domain.User, error) {
	args := m.Called(ctx, userID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AdjustGems(
	ctx context.Context,
	userID uuid.UUID,
	delta int,
) (*domain.User, error) {
	args := m.Called(ctx, userID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockLessonService mocks the service.LessonService interface.
type MockLessonService struct {
	mock.Mock
}

func (m *MockLessonService) CreateLesson(
	ctx context.Context,
	title, description string,
	level, order int,
	locked bool,
	exercises []domain.Exercise,
) (*domain.Lesson, error) {
	args := m.Called(ctx, title, description, level, order, locked, exercises)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonService) GetLesson(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonService) ListLessons(ctx context.Context) ([]*domain.Lesson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lesson), args.Error(1)
}

func (m *MockLessonService) ListLessonsByLevel(
	ctx context.Context,
	level int,
) ([]*domain.Lesson, error) {
	args := m.Called(ctx, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lesson), args.Error(1)
}

func (m *MockLessonService) UpdateLesson(
	ctx context.Context,
	id uuid.UUID,
	patch store.LessonPatch,
) (*domain.Lesson, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonService) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDictionaryService mocks the service.DictionaryService interface.
type MockDictionaryService struct {
	mock.Mock
}

func (m *MockDictionaryService) AddEntry(
	ctx context.Context,
	balinese, latin, indonesian, category string,
	level int,
	examples []domain.DictionaryExample,
) (*domain.DictionaryEntry, error) {
	args := m.Called(ctx, balinese, latin, indonesian, category, level, examples)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DictionaryEntry), args.Error(1)
}

func (m *MockDictionaryService) GetEntry(
	ctx context.Context,
	id uuid.UUID,
) (*domain.DictionaryEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DictionaryEntry), args.Error(1)
}

func (m *MockDictionaryService) Search(
	ctx context.Context,
	query string,
	limit int,
) ([]*domain.DictionaryEntry, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DictionaryEntry), args.Error(1)
}

func (m *MockDictionaryService) ListByCategory(
	ctx context.Context,
	category string,
) ([]*domain.DictionaryEntry, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DictionaryEntry), args.Error(1)
}

func (m *MockDictionaryService) ListByLevel(
	ctx context.Context,
	level int,
) ([]*domain.DictionaryEntry, error) {
	args := m.Called(ctx, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DictionaryEntry), args.Error(1)
}

func (m *MockDictionaryService) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDictionaryService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProgressService mocks the service.ProgressService interface.
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) RecordAttempt(
	ctx context.Context,
	userID, lessonID uuid.UUID,
	score int,
) (*service.AttemptResult, error) {
	args := m.Called(ctx, userID, lessonID, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AttemptResult), args.Error(1)
}

func (m *MockProgressService) GetLessonProgress(
	ctx context.Context,
	userID, lessonID uuid.UUID,
) (*domain.UserProgress, error) {
	args := m.Called(ctx, userID, lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProgress), args.Error(1)
}

func (m *MockProgressService) ListUserProgress(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserProgress), args.Error(1)
}
