package todayset

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Item is one quest of the set.
type Item struct {
	ItemID     core.ItemIDString
	QuestID    string
	QuestName  string
	Category   core.Category
	Difficulty core.Difficulty
	Points     int
	SortOrder  int
}

// TodaySet is the result of the query. Found is false until the set has been assigned.
type TodaySet struct {
	Found          bool
	DailySetID     core.DailySetIDString
	TeamID         core.TeamIDString
	SetDate        core.SetDateString
	Difficulty     core.Difficulty
	GeneratedBy    string
	Items          []Item
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event used to build the projection.
func (r TodaySet) GetSequenceNumber() uint {
	return r.SequenceNumber
}
