package core

import (
	"time"
)

// QuestCompletedEventType is the event type identifier.
const QuestCompletedEventType = "QuestCompleted"

// QuestCompleted records that a member completed one item of the team's daily set.
// TeamTotalPoints and TeamRank are the team state right after this completion.
type QuestCompleted struct {
	TeamID          TeamIDString
	UserID          UserIDString
	DisplayName     string
	DailySetID      DailySetIDString
	ItemID          ItemIDString
	QuestID         string
	QuestName       string
	Points          int
	SetDate         SetDateString
	TeamTotalPoints int
	TeamRank        Rank
	OccurredAt      OccurredAtTS
}

// BuildQuestCompleted creates a new QuestCompleted event.
func BuildQuestCompleted(
	teamID TeamIDString,
	userID UserIDString,
	displayName string,
	set DailyQuestSetAssigned,
	item DailyQuestItem,
	teamTotalPoints int,
	occurredAt time.Time,
) QuestCompleted {

	return QuestCompleted{
		TeamID:          teamID,
		UserID:          userID,
		DisplayName:     displayName,
		DailySetID:      set.DailySetID,
		ItemID:          item.ItemID,
		QuestID:         item.QuestID,
		QuestName:       item.QuestName,
		Points:          item.Points,
		SetDate:         set.SetDate,
		TeamTotalPoints: teamTotalPoints,
		TeamRank:        RankForPoints(teamTotalPoints),
		OccurredAt:      ToOccurredAt(occurredAt),
	}
}

func (e QuestCompleted) IsEventType() string {
	return QuestCompletedEventType
}

func (e QuestCompleted) HasOccurredAt() time.Time {
	return e.OccurredAt
}

func (e QuestCompleted) IsErrorEvent() bool {
	return false
}
