package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDictionaryEntry(t *testing.T) {
	t.Parallel()

	t.Run("valid entry", func(t *testing.T) {
		t.Parallel()
		examples := []DictionaryExample{
			{Balinese: "ᬭᬵᬳᬚᭂᬂ ᬲᭂᬫᭂᬂ", Latin: "rahajeng semeng", Indonesian: "selamat pagi"},
		}
		entry, err := NewDictionaryEntry("ᬭᬵᬳᬚᭂᬂ", "rahajeng", "selamat", "greetings", 1, examples)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, entry.ID)
		assert.Equal(t, "rahajeng", entry.Latin)
		assert.Equal(t, "greetings", entry.Category)
		assert.Len(t, entry.Examples, 1)
	})

	t.Run("examples are optional", func(t *testing.T) {
		t.Parallel()
		entry, err := NewDictionaryEntry("ᬦᬵᬲᬶ", "nasi", "nasi", "food", 1, nil)
		require.NoError(t, err)
		assert.Empty(t, entry.Examples)
	})

	t.Run("invalid input is rejected", func(t *testing.T) {
		t.Parallel()
		testCases := []struct {
			name       string
			balinese   string
			latin      string
			indonesian string
			category   string
			level      int
			expectErr  error
		}{
			{name: "empty balinese", latin: "nasi", indonesian: "nasi", category: "food", level: 1, expectErr: ErrEmptyBalinese},
			{name: "empty latin", balinese: "ᬦᬵᬲᬶ", indonesian: "nasi", category: "food", level: 1, expectErr: ErrEmptyLatin},
			{name: "empty indonesian", balinese: "ᬦᬵᬲᬶ", latin: "nasi", category: "food", level: 1, expectErr: ErrEmptyIndonesian},
			{name: "empty category", balinese: "ᬦᬵᬲᬶ", latin: "nasi", indonesian: "nasi", level: 1, expectErr: ErrEmptyCategory},
			{name: "level below one", balinese: "ᬦᬵᬲᬶ", latin: "nasi", indonesian: "nasi", category: "food", level: 0, expectErr: ErrInvalidEntryLevel},
		}

		for _, tc := range testCases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				_, err := NewDictionaryEntry(tc.balinese, tc.latin, tc.indonesian, tc.category, tc.level, nil)
				assert.ErrorIs(t, err, tc.expectErr)
			})
		}
	})
}
