package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for DictionaryEntry.
var (
	ErrEmptyEntryID      = errors.New("dictionary entry ID cannot be empty")
	ErrEmptyBalinese     = errors.New("balinese script form cannot be empty")
	ErrEmptyLatin        = errors.New("latin transliteration cannot be empty")
	ErrEmptyIndonesian   = errors.New("indonesian translation cannot be empty")
	ErrEmptyCategory     = errors.New("category cannot be empty")
	ErrInvalidEntryLevel = errors.New("dictionary entry level must be at least 1")
)

// DictionaryExample is a usage example attached to a dictionary entry.
type DictionaryExample struct {
	Balinese   string `json:"balinese"`
	Latin      string `json:"latin"`
	Indonesian string `json:"indonesian"`
}

// DictionaryEntry is a standalone vocabulary record: a Balinese script form
// with its Latin transliteration and Indonesian translation. Entries have no
// relationship to users or lessons.
type DictionaryEntry struct {
	ID         uuid.UUID           `json:"id"`
	Balinese   string              `json:"balinese"`
	Latin      string              `json:"latin"`
	Indonesian string              `json:"indonesian"`
	Category   string              `json:"category"`
	Level      int                 `json:"level"`
	Examples   []DictionaryExample `json:"examples,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// NewDictionaryEntry creates a new DictionaryEntry.
// Returns an error if validation fails.
func NewDictionaryEntry(
	balinese, latin, indonesian, category string,
	level int,
	examples []DictionaryExample,
) (*DictionaryEntry, error) {
	now := time.Now().UTC()
	entry := &DictionaryEntry{
		ID:         uuid.New(),
		Balinese:   balinese,
		Latin:      latin,
		Indonesian: indonesian,
		Category:   category,
		Level:      level,
		Examples:   examples,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the DictionaryEntry has valid data.
func (d *DictionaryEntry) Validate() error {
	if d.ID == uuid.Nil {
		return ErrEmptyEntryID
	}

	if d.Balinese == "" {
		return ErrEmptyBalinese
	}

	if d.Latin == "" {
		return ErrEmptyLatin
	}

	if d.Indonesian == "" {
		return ErrEmptyIndonesian
	}

	if d.Category == "" {
		return ErrEmptyCategory
	}

	if d.Level < 1 {
		return ErrInvalidEntryLevel
	}

	return nil
}
