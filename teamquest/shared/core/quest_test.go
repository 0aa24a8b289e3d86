package core_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

func givenQuest(id string, category core.Category, difficulty core.Difficulty) core.Quest {
	return core.Quest{
		ID:         id,
		Name:       "Quest " + id,
		Category:   category,
		Difficulty: difficulty,
		Points:     difficulty.Points(),
		Active:     true,
	}
}

func givenCatalog(stretch, muscle int, difficulty core.Difficulty) []core.Quest {
	var quests []core.Quest
	for i := range stretch {
		quests = append(quests, givenQuest(fmt.Sprintf("s%d-%s", i, difficulty), core.CategoryStretch, difficulty))
	}
	for i := range muscle {
		quests = append(quests, givenQuest(fmt.Sprintf("m%d-%s", i, difficulty), core.CategoryMuscle, difficulty))
	}

	return quests
}

func countCategory(quests []core.Quest, category core.Category) int {
	n := 0
	for _, q := range quests {
		if q.Category == category {
			n++
		}
	}

	return n
}

func Test_PickDailyQuests_MixesTwoStretchAndTwoMuscle(t *testing.T) {
	// arrange
	catalog := append(givenCatalog(5, 5, core.DifficultyNormal), givenCatalog(5, 5, core.DifficultyEasy)...)
	rng := rand.New(rand.NewPCG(1, 2))

	// act
	picked, err := core.PickDailyQuests(catalog, core.DifficultyNormal, rng)

	// assert
	require.NoError(t, err)
	require.Len(t, picked, core.QuestsPerDay)
	assert.Equal(t, 2, countCategory(picked, core.CategoryStretch))
	assert.Equal(t, 2, countCategory(picked, core.CategoryMuscle))

	for _, q := range picked {
		assert.Equal(t, core.DifficultyNormal, q.Difficulty)
	}
}

func Test_PickDailyQuests_FillsUpFromTheLargerCategory(t *testing.T) {
	// arrange
	catalog := givenCatalog(1, 6, core.DifficultyHard)
	rng := rand.New(rand.NewPCG(3, 4))

	// act
	picked, err := core.PickDailyQuests(catalog, core.DifficultyHard, rng)

	// assert
	require.NoError(t, err)
	require.Len(t, picked, core.QuestsPerDay)
	assert.Equal(t, 1, countCategory(picked, core.CategoryStretch))

	seen := map[string]bool{}
	for _, q := range picked {
		assert.False(t, seen[q.ID], "duplicate pick %s", q.ID)
		seen[q.ID] = true
	}
}

func Test_PickDailyQuests_IgnoresInactiveQuests(t *testing.T) {
	// arrange
	catalog := givenCatalog(2, 2, core.DifficultyEasy)
	catalog[0].Active = false

	// act
	_, err := core.PickDailyQuests(catalog, core.DifficultyEasy, rand.New(rand.NewPCG(1, 1)))

	// assert
	assert.ErrorIs(t, err, core.ErrNotEnoughQuests)
}

func Test_PickDailyQuests_SameSeed_SamePick(t *testing.T) {
	// arrange
	catalog := givenCatalog(6, 6, core.DifficultyEasy)

	// act
	first, errFirst := core.PickDailyQuests(catalog, core.DifficultyEasy, rand.New(rand.NewPCG(42, 7)))
	second, errSecond := core.PickDailyQuests(catalog, core.DifficultyEasy, rand.New(rand.NewPCG(42, 7)))

	// assert
	require.NoError(t, errFirst)
	require.NoError(t, errSecond)
	assert.Equal(t, first, second)
}

func Test_Quest_Validate(t *testing.T) {
	valid := givenQuest("q1", core.CategoryMuscle, core.DifficultyHard)

	testCases := map[string]struct {
		mutate  func(q *core.Quest)
		wantErr bool
	}{
		"valid":              {mutate: func(_ *core.Quest) {}},
		"empty id":           {mutate: func(q *core.Quest) { q.ID = " " }, wantErr: true},
		"empty name":         {mutate: func(q *core.Quest) { q.Name = "" }, wantErr: true},
		"long name":          {mutate: func(q *core.Quest) { q.Name = string(make([]rune, 51)) }, wantErr: true},
		"unknown category":   {mutate: func(q *core.Quest) { q.Category = "cardio" }, wantErr: true},
		"unknown difficulty": {mutate: func(q *core.Quest) { q.Difficulty = "medium" }, wantErr: true},
		"points mismatch":    {mutate: func(q *core.Quest) { q.Points = 40 }, wantErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// arrange
			q := valid
			tc.mutate(&q)

			// act
			err := q.Validate()

			// assert
			if tc.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidQuest)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_ValidateCatalog_RejectsDuplicateIDs(t *testing.T) {
	// arrange
	catalog := []core.Quest{
		givenQuest("q1", core.CategoryMuscle, core.DifficultyHard),
		givenQuest("q1", core.CategoryStretch, core.DifficultyHard),
	}

	// act
	err := core.ValidateCatalog(catalog)

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidQuest)
	assert.Contains(t, err.Error(), "duplicate")
}
