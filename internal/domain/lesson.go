package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExerciseType identifies the kind of question an exercise poses.
type ExerciseType string

// Known exercise types.
const (
	ExerciseTypeMultipleChoice ExerciseType = "multiple_choice"
	ExerciseTypeTranslate      ExerciseType = "translate"
	ExerciseTypeListen         ExerciseType = "listen"
	ExerciseTypeSpeak          ExerciseType = "speak"
	ExerciseTypeMatch          ExerciseType = "match"
	ExerciseTypeFillBlank      ExerciseType = "fill_blank"
)

// Common validation errors for Lesson and Exercise.
var (
	ErrEmptyLessonID      = errors.New("lesson ID cannot be empty")
	ErrEmptyLessonTitle   = errors.New("lesson title cannot be empty")
	ErrInvalidLessonLevel = errors.New("lesson level must be at least 1")
	ErrInvalidLessonOrder = errors.New("lesson order must be at least 1")
	ErrEmptyPrompt        = errors.New("exercise prompt cannot be empty")
	ErrEmptyCorrectAnswer = errors.New("exercise correct answer cannot be empty")
)

// Exercise is a single question belonging to a lesson. Exercises have no
// independent lifecycle: they are embedded in their lesson and are created
// and destroyed with it.
type Exercise struct {
	Type          ExerciseType `json:"type"`
	Prompt        string       `json:"prompt"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation,omitempty"`
	BalineseText  string       `json:"balinese_text,omitempty"`
	LatinText     string       `json:"latin_text,omitempty"`
	AudioURL      string       `json:"audio_url,omitempty"`
}

// Validate checks if the Exercise has valid data.
func (e *Exercise) Validate() error {
	switch e.Type {
	case ExerciseTypeMultipleChoice, ExerciseTypeTranslate, ExerciseTypeListen,
		ExerciseTypeSpeak, ExerciseTypeMatch, ExerciseTypeFillBlank:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExerciseType, e.Type)
	}

	if e.Prompt == "" {
		return ErrEmptyPrompt
	}

	if e.CorrectAnswer == "" {
		return ErrEmptyCorrectAnswer
	}

	return nil
}

// Lesson is an ordered unit of instructional content within a difficulty
// level. Order is unique within a level. Locked reflects prior-lesson
// completion and is derived externally; it is not authoritative once
// progress records exist.
type Lesson struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Level       int        `json:"level"`
	Order       int        `json:"order"`
	Locked      bool       `json:"locked"`
	Exercises   []Exercise `json:"exercises"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewLesson creates a new Lesson with the given content.
// Returns an error if validation fails for the lesson or any exercise.
func NewLesson(title, description string, level, order int, locked bool, exercises []Exercise) (*Lesson, error) {
	now := time.Now().UTC()
	lesson := &Lesson{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Level:       level,
		Order:       order,
		Locked:      locked,
		Exercises:   exercises,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := lesson.Validate(); err != nil {
		return nil, err
	}

	return lesson, nil
}

// Validate checks if the Lesson and all of its exercises have valid data.
func (l *Lesson) Validate() error {
	if l.ID == uuid.Nil {
		return ErrEmptyLessonID
	}

	if l.Title == "" {
		return ErrEmptyLessonTitle
	}

	if l.Level < 1 {
		return ErrInvalidLessonLevel
	}

	if l.Order < 1 {
		return ErrInvalidLessonOrder
	}

	for i := range l.Exercises {
		if err := l.Exercises[i].Validate(); err != nil {
			return fmt.Errorf("exercise %d: %w", i, err)
		}
	}

	return nil
}
