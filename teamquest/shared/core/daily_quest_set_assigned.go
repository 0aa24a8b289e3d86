package core

import (
	"time"
)

// DailyQuestSetAssignedEventType is the event type identifier.
const DailyQuestSetAssignedEventType = "DailyQuestSetAssigned"

// GeneratedByLogic marks sets picked by PickDailyQuests.
const GeneratedByLogic = "logic"

// DailyQuestItem is one of the four quests of a daily set, copied from the catalog
// so later catalog edits do not change history.
type DailyQuestItem struct {
	ItemID     ItemIDString
	QuestID    string
	QuestName  string
	Category   Category
	Difficulty Difficulty
	Points     int
	SortOrder  int
}

// DailyQuestSetAssigned records the quest set of one team for one local date.
// There is at most one per (TeamID, SetDate).
type DailyQuestSetAssigned struct {
	DailySetID  DailySetIDString
	TeamID      TeamIDString
	SetDate     SetDateString
	Difficulty  Difficulty
	GeneratedBy string
	Items       []DailyQuestItem
	OccurredAt  OccurredAtTS
}

// BuildDailyQuestSetAssigned creates a new DailyQuestSetAssigned event.
func BuildDailyQuestSetAssigned(
	dailySetID DailySetIDString,
	teamID TeamIDString,
	setDate SetDateString,
	difficulty Difficulty,
	generatedBy string,
	items []DailyQuestItem,
	occurredAt time.Time,
) DailyQuestSetAssigned {

	return DailyQuestSetAssigned{
		DailySetID:  dailySetID,
		TeamID:      teamID,
		SetDate:     setDate,
		Difficulty:  difficulty,
		GeneratedBy: generatedBy,
		Items:       items,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// Item returns the item with itemID.
func (e DailyQuestSetAssigned) Item(itemID ItemIDString) (DailyQuestItem, bool) {
	for _, item := range e.Items {
		if item.ItemID == itemID {
			return item, true
		}
	}

	return DailyQuestItem{}, false
}

func (e DailyQuestSetAssigned) IsEventType() string {
	return DailyQuestSetAssignedEventType
}

func (e DailyQuestSetAssigned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e DailyQuestSetAssigned) IsErrorEvent() bool {
	return false
}
