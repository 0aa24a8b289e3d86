package core

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// dailySetNamespace seeds the UUIDv5 IDs of daily sets and their items.
var dailySetNamespace = uuid.MustParse("b3d6a0e2-5f1e-4c8a-9a57-2c0f3e8d7b41")

// DailySetIDFor returns the ID of the set of teamID on setDate. It is the same for every replica,
// so two concurrent assignments write the same set.
func DailySetIDFor(teamID TeamIDString, setDate SetDateString) DailySetIDString {
	return uuid.NewSHA1(dailySetNamespace, []byte(teamID+"/"+setDate)).String()
}

// DailyItemIDFor returns the ID of the item at sortOrder within the set.
func DailyItemIDFor(dailySetID DailySetIDString, sortOrder int) ItemIDString {
	return uuid.NewSHA1(dailySetNamespace, []byte(dailySetID+"/"+strconv.Itoa(sortOrder))).String()
}

// DailyRand returns the random source used to pick the set of teamID on setDate.
func DailyRand(teamID TeamIDString, setDate SetDateString) *rand.Rand {
	team := fnv.New64a()
	_, _ = team.Write([]byte(teamID))

	date := fnv.New64a()
	_, _ = date.Write([]byte(setDate))

	return rand.New(rand.NewPCG(team.Sum64(), date.Sum64())) //nolint:gosec // quest picking does not need crypto randomness
}

// BuildDailyItems turns picked quests into set items in display order, starting at sort order 1.
func BuildDailyItems(dailySetID DailySetIDString, quests []Quest) []DailyQuestItem {
	items := make([]DailyQuestItem, 0, len(quests))

	for i, q := range quests {
		sortOrder := i + 1
		items = append(items, DailyQuestItem{
			ItemID:     DailyItemIDFor(dailySetID, sortOrder),
			QuestID:    q.ID,
			QuestName:  q.Name,
			Category:   q.Category,
			Difficulty: q.Difficulty,
			Points:     q.Points,
			SortOrder:  sortOrder,
		})
	}

	return items
}
