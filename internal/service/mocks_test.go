package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/store"
)

// MockUserStore mocks the store.UserStore interface.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the mock itself so transactional code paths exercise the
// same expectations.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockLessonStore mocks the store.LessonStore interface.
type MockLessonStore struct {
	mock.Mock
}

func (m *MockLessonStore) Create(ctx context.Context, lesson *domain.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonStore) List(ctx context.Context) ([]*domain.Lesson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lesson), args.Error(1)
}

func (m *MockLessonStore) ListByLevel(ctx context.Context, level int) ([]*domain.Lesson, error) {
	args := m.Called(ctx, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lesson), args.Error(1)
}

func (m *MockLessonStore) Update(ctx context.Context, id uuid.UUID, patch store.LessonPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockLessonStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLessonStore) WithTx(tx *sql.Tx) store.LessonStore {
	return m
}

// MockDictionaryStore mocks the store.DictionaryStore interface.
type MockDictionaryStore struct {
	mock.Mock
}

func (m *MockDictionaryStore) Create(ctx context.Context, entry *domain.DictionaryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDictionaryStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.DictionaryEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DictionaryEntry), args.Error(1)
}

func (m *MockDictionaryStore) Search(
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

func (m *MockDictionaryStore) ListByCategory(
	ctx context.Context,
	category string,
) ([]*domain.DictionaryEntry, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DictionaryEntry), args.Error(1)
}

func (m *MockDictionaryStore) ListByLevel(
	ctx context.Context,
	level int,
) ([]*domain.DictionaryEntry, error) {
	args := m.Called(ctx, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DictionaryEntry), args.Error(1)
}

func (m *MockDictionaryStore) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDictionaryStore) Update(ctx context.Context, entry *domain.DictionaryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockDictionaryStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDictionaryStore) WithTx(tx *sql.Tx) store.DictionaryStore {
	return m
}

// MockProgressStore mocks the store.ProgressStore interface.
type MockProgressStore struct {
	mock.Mock
}

func (m *MockProgressStore) Get(
	ctx context.Context,
	userID, lessonID uuid.UUID,
) (*domain.UserProgress, error) {
	args := m.Called(ctx, userID, lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProgress), args.Error(1)
}

func (m *MockProgressStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.UserProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserProgress), args.Error(1)
}

func (m *MockProgressStore) Upsert(
	ctx context.Context,
	progress *domain.UserProgress,
) (*domain.UserProgress, error) {
	args := m.Called(ctx, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProgress), args.Error(1)
}

func (m *MockProgressStore) Delete(ctx context.Context, userID, lessonID uuid.UUID) error {
	args := m.Called(ctx, userID, lessonID)
	return args.Error(0)
}

func (m *MockProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return m
}
