package api

import "github.com/aksarabali/aksara-api/internal/domain"

// CreateUserRequest is the request body for registering a new user.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=100"`
}

// AwardExperienceRequest is the request body for awarding experience.
type AwardExperienceRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// AdjustCurrencyRequest is the request body for hearts and gems adjustments.
// Delta may be negative to spend or lose currency.
type AdjustCurrencyRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CreateLessonRequest is the request body for creating a lesson.
type CreateLessonRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description"`
	Level       int               `json:"level" validate:"required,min=1"`
	Order       int               `json:"order" validate:"required,min=1"`
	Locked      bool              `json:"locked"`
	Exercises   []domain.Exercise `json:"exercises" validate:"required,min=1"`
}

// UpdateLessonRequest is the request body for partially updating a lesson.
// Absent fields leave the stored value untouched.
type UpdateLessonRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Locked      *bool   `json:"locked,omitempty"`
}

// CreateEntryRequest is the request body for adding a dictionary entry.
type CreateEntryRequest struct {
	Balinese   string                     `json:"balinese" validate:"required"`
	Latin      string                     `json:"latin" validate:"required"`
	Indonesian string                     `json:"indonesian" validate:"required"`
	Category   string                     `json:"category" validate:"required"`
	Level      int                        `json:"level" validate:"required,min=1"`
	Examples   []domain.DictionaryExample `json:"examples,omitempty"`
}

// RecordAttemptRequest is the request body for recording a lesson attempt.
type RecordAttemptRequest struct {
	Score int `json:"score" validate:"min=0,max=100"`
}
