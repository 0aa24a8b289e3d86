package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

// QuestsPerDay is the size of a daily quest set.
const QuestsPerDay = 4

const maxQuestNameLength = 50

// Category groups quests so that a daily set mixes both kinds.
type Category string

const (
	CategoryStretch Category = "stretch"
	CategoryMuscle  Category = "muscle"
)

func (c Category) IsValid() bool {
	return c == CategoryStretch || c == CategoryMuscle
}

// Quest is one entry of the quest catalog.
type Quest struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Category    Category   `yaml:"category"`
	Difficulty  Difficulty `yaml:"difficulty"`
	Points      int        `yaml:"points"`
	Active      bool       `yaml:"active"`
}

// Validate checks a catalog entry. Points must match the difficulty.
func (q Quest) Validate() error {
	var problems []string

	if strings.TrimSpace(q.ID) == "" {
		problems = append(problems, "id is empty")
	}

	name := strings.TrimSpace(q.Name)
	if name == "" || utf8.RuneCountInString(name) > maxQuestNameLength {
		problems = append(problems, fmt.Sprintf("name must be 1 to %d characters", maxQuestNameLength))
	}

	if !q.Category.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown category %q", q.Category))
	}

	if !q.Difficulty.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown difficulty %q", q.Difficulty))
	} else if q.Points != q.Difficulty.Points() {
		problems = append(problems, fmt.Sprintf("points must be %d for %s quests", q.Difficulty.Points(), q.Difficulty))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: quest %q: %s", ErrInvalidQuest, q.ID, strings.Join(problems, ", "))
	}

	return nil
}

// ValidateCatalog validates every quest and rejects duplicate IDs.
func ValidateCatalog(quests []Quest) error {
	var errs []error
	seen := make(map[string]bool, len(quests))

	for _, q := range quests {
		if err := q.Validate(); err != nil {
			errs = append(errs, err)
		}

		if seen[q.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate id %q", ErrInvalidQuest, q.ID))
		}
		seen[q.ID] = true
	}

	return errors.Join(errs...)
}

// PickDailyQuests selects QuestsPerDay active quests of the given difficulty:
// up to 2 stretch and 2 muscle quests, topped up from the remaining candidates.
// The order of the result is the display order of the set.
func PickDailyQuests(catalog []Quest, difficulty Difficulty, rng *rand.Rand) ([]Quest, error) {
	var stretch, muscle, candidates []Quest

	for _, q := range catalog {
		if !q.Active || q.Difficulty != difficulty {
			continue
		}

		candidates = append(candidates, q)

		switch q.Category {
		case CategoryStretch:
			stretch = append(stretch, q)
		case CategoryMuscle:
			muscle = append(muscle, q)
		}
	}

	if len(candidates) < QuestsPerDay {
		return nil, ErrNotEnoughQuests
	}

	shuffle(stretch, rng)
	shuffle(muscle, rng)

	picked := make([]Quest, 0, QuestsPerDay)
	picked = append(picked, stretch[:min(2, len(stretch))]...)
	picked = append(picked, muscle[:min(2, len(muscle))]...)

	if len(picked) < QuestsPerDay {
		taken := make(map[string]bool, len(picked))
		for _, q := range picked {
			taken[q.ID] = true
		}

		remaining := make([]Quest, 0, len(candidates))
		for _, q := range candidates {
			if !taken[q.ID] {
				remaining = append(remaining, q)
			}
		}

		shuffle(remaining, rng)
		picked = append(picked, remaining[:min(QuestsPerDay-len(picked), len(remaining))]...)
	}

	if len(picked) < QuestsPerDay {
		return nil, ErrNotEnoughQuests
	}

	return picked, nil
}

func shuffle(quests []Quest, rng *rand.Rand) {
	rng.Shuffle(len(quests), func(i, j int) {
		quests[i], quests[j] = quests[j], quests[i]
	})
}
