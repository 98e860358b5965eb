// Package seed loads starter Balinese content into an empty store so a
// fresh deployment has usable lessons and dictionary entries before any
// author has added content.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aksarabali/aksara-api/internal/domain"
	"github.com/aksarabali/aksara-api/internal/store"
)

// Run inserts the starter lessons and dictionary entries. Each collection
// is seeded only when it is empty, so running against a populated database
// changes nothing.
func Run(
	ctx context.Context,
	lessons store.LessonStore,
	dictionary store.DictionaryStore,
	log *slog.Logger,
) error {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "seed"))

	if err := seedLessons(ctx, lessons, log); err != nil {
		return err
	}
	return seedDictionary(ctx, dictionary, log)
}

func seedLessons(ctx context.Context, lessons store.LessonStore, log *slog.Logger) error {
	existing, err := lessons.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing lessons: %w", err)
	}
	if len(existing) > 0 {
		log.Debug("lessons already present, skipping seed",
			slog.Int("count", len(existing)))
		return nil
	}

	starter, err := StarterLessons()
	if err != nil {
		return err
	}
	for _, lesson := range starter {
		if err := lessons.Create(ctx, lesson); err != nil {
			return fmt.Errorf("failed to seed lesson %q: %w", lesson.Title, err)
		}
	}

	log.Info("seeded starter lessons", slog.Int("count", len(starter)))
	return nil
}

func seedDictionary(ctx context.Context, dictionary store.DictionaryStore, log *slog.Logger) error {
	// Every entry carries a category, so no categories means an empty table.
	categories, err := dictionary.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing dictionary entries: %w", err)
	}
	if len(categories) > 0 {
		log.Debug("dictionary entries already present, skipping seed",
			slog.Int("categories", len(categories)))
		return nil
	}

	starter, err := StarterEntries()
	if err != nil {
		return err
	}
	for _, entry := range starter {
		if err := dictionary.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed dictionary entry %q: %w", entry.Latin, err)
		}
	}

	log.Info("seeded starter dictionary entries", slog.Int("count", len(starter)))
	return nil
}

// StarterLessons builds the introductory lesson set: greetings first, then
// numbers and time, locked until the greetings lesson is completed.
func StarterLessons() ([]*domain.Lesson, error) {
	greetings, err := domain.NewLesson(
		"Salam dan Perkenalan",
		"Belajar sapaan dasar dalam bahasa Bali",
		1, 1, false,
		[]domain.Exercise{
			{
				Type:          domain.ExerciseTypeMultipleChoice,
				Prompt:        "Bagaimana cara mengucapkan 'Selamat pagi' dalam bahasa Bali?",
				Options:       []string{"Rahajeng semeng", "Rahajeng wengi", "Suksma", "Ampura"},
				CorrectAnswer: "Rahajeng semeng",
				Explanation:   "Rahajeng semeng adalah sapaan 'Selamat pagi' dalam bahasa Bali",
				BalineseText:  "ᬭᬳᬚᭂᬂ ᬲᭂᬫᭂᬂ",
				LatinText:     "Rahajeng semeng",
			},
			{
				Type:          domain.ExerciseTypeTranslate,
				Prompt:        "Terjemahkan: 'Suksma'",
				CorrectAnswer: "Terima kasih",
				Explanation:   "Suksma berarti 'Terima kasih' dalam bahasa Bali",
				BalineseText:  "ᬲᬸᬓ᭄ᬲ᭄ᬫ",
				LatinText:     "Suksma",
			},
		})
	if err != nil {
		return nil, fmt.Errorf("invalid starter lesson: %w", err)
	}

	numbers, err := domain.NewLesson(
		"Angka dan Waktu",
		"Pelajari angka dan ungkapan waktu dalam bahasa Bali",
		1, 2, true,
		[]domain.Exercise{
			{
				Type:          domain.ExerciseTypeMultipleChoice,
				Prompt:        "Bagaimana cara mengucapkan angka '5' dalam bahasa Bali?",
				Options:       []string{"Dasa", "Lima", "Panca", "Enem"},
				CorrectAnswer: "Panca",
				Explanation:   "Panca adalah angka 5 dalam bahasa Bali",
				BalineseText:  "ᬧᬜ᭄ᬘ",
				LatinText:     "Panca",
			},
		})
	if err != nil {
		return nil, fmt.Errorf("invalid starter lesson: %w", err)
	}

	return []*domain.Lesson{greetings, numbers}, nil
}

// StarterEntries builds the starter vocabulary spanning the base categories
// (greetings, politeness, numbers, objects, animals).
func StarterEntries() ([]*domain.DictionaryEntry, error) {
	seeds := []struct {
		balinese   string
		latin      string
		indonesian string
		category   string
		example    domain.DictionaryExample
	}{
		{
			balinese:   "ᬭᬳᬚᭂᬂ ᬲᭂᬫᭂᬂ",
			latin:      "Rahajeng semeng",
			indonesian: "Selamat pagi",
			category:   "Sapaan",
			example: domain.DictionaryExample{
				Balinese:   "ᬭᬳᬚᭂᬂ ᬲᭂᬫᭂᬂ, ᬓᭂᬦ᭄ᬤᬕ ᬓᬬᬸ?",
				Latin:      "Rahajeng semeng, kendag kayu?",
				Indonesian: "Selamat pagi, bagaimana kabar Anda?",
			},
		},
		{
			balinese:   "ᬲᬸᬓ᭄ᬲ᭄ᬫ",
			latin:      "Suksma",
			indonesian: "Terima kasih",
			category:   "Sopan Santun",
			example: domain.DictionaryExample{
				Balinese:   "ᬲᬸᬓ᭄ᬲ᭄ᬫ ᬫᬫᬭ",
				Latin:      "Suksma memer",
				Indonesian: "Terima kasih banyak",
			},
		},
		{
			balinese:   "ᬧᬜ᭄ᬘ",
			latin:      "Panca",
			indonesian: "Lima",
			category:   "Angka",
			example: domain.DictionaryExample{
				Balinese:   "ᬅᬤ ᬧᬜ᭄ᬘ ᬚᬦᬶ",
				Latin:      "Ada panca jani",
				Indonesian: "Ada lima orang",
			},
		},
		{
			balinese:   "ᬳᬸᬫ",
			latin:      "Umah",
			indonesian: "Rumah",
			category:   "Benda",
			example: domain.DictionaryExample{
				Balinese:   "ᬳᬸᬫᬦ᭄ᬫᬸ ᬚᬭᬦ᭄",
				Latin:      "Umahmu jaran",
				Indonesian: "Rumahmu jauh",
			},
		},
		{
			balinese:   "ᬚᬸᬓ᭄",
			latin:      "Juk",
			indonesian: "Anjing",
			category:   "Hewan",
			example: domain.DictionaryExample{
				Balinese:   "ᬚᬸᬓᭂ ᬓᭂᬦ᭄ᬤᬄ",
				Latin:      "Juke kendah",
				Indonesian: "Anjing kecil",
			},
		},
	}

	entries := make([]*domain.DictionaryEntry, 0, len(seeds))
	for _, s := range seeds {
		entry, err := domain.NewDictionaryEntry(
			s.balinese, s.latin, s.indonesian, s.category, 1,
			[]domain.DictionaryExample{s.example})
		if err != nil {
			return nil, fmt.Errorf("invalid starter entry %q: %w", s.latin, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
