package todayprogress

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// ItemProgress is the completion state of one item.
type ItemProgress struct {
	ItemID          core.ItemIDString
	QuestName       string
	Category        core.Category
	Points          int
	SortOrder       int
	CompletedCount  int
	MemberCount     int
	IsCompletedByMe bool
}

// TodayProgress is the result of the query. Items is empty when no set exists for the date.
type TodayProgress struct {
	SetDate          core.SetDateString
	Difficulty       core.Difficulty
	Items            []ItemProgress
	MemberCount      int
	CheckedInMembers int // distinct members with at least one completion
	CompletedByMe    int
	MoodComment      string
	SequenceNumber   uint
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r TodayProgress) GetSequenceNumber() uint {
	return r.SequenceNumber
}
