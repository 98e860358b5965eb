package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Default gamification state for a freshly created user.
const (
	InitialLevel  = 1
	InitialHearts = 5
	MaxHearts     = 5
)

// Common validation errors for User.
var (
	ErrEmptyUserID        = errors.New("user ID cannot be empty")
	ErrEmptyEmail         = errors.New("email cannot be empty")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrNegativeExperience = errors.New("experience cannot be negative")
	ErrInvalidLevel       = errors.New("level must be at least 1")
	ErrNegativeStreak     = errors.New("streak cannot be negative")
	ErrNegativeHearts     = errors.New("hearts cannot be negative")
	ErrNegativeGems       = errors.New("gems cannot be negative")
)

// User represents a learner and their gamification state.
//
// Level is always derived from Experience (see progression.LevelForExperience);
// it is never set independently, only recomputed whenever experience changes.
type User struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	Streak     int       `json:"streak"`
	Hearts     int       `json:"hearts"`
	Gems       int       `json:"gems"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email and display name.
// New users start at level 1 with zero experience, a full set of hearts,
// and no gems or streak. Returns an error if validation fails.
func NewUser(email, name string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:         uuid.New(),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Name:       strings.TrimSpace(name),
		Level:      InitialLevel,
		Experience: 0,
		Streak:     0,
		Hearts:     InitialHearts,
		Gems:       0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if u.Experience < 0 {
		return ErrNegativeExperience
	}

	if u.Level < 1 {
		return ErrInvalidLevel
	}

	if u.Streak < 0 {
		return ErrNegativeStreak
	}

	if u.Hearts < 0 {
		return ErrNegativeHearts
	}

	if u.Gems < 0 {
		return ErrNegativeGems
	}

	return nil
}

// validateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
// Intentionally simple: requires a non-edge '@' followed by a dotted domain.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := strings.IndexByte(domainPart, '.')
	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
