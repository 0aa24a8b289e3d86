package todayset

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	queryType = "TodaySet"
)

// Query asks for the set of TeamID on SetDate.
type Query struct {
	TeamID      core.TeamIDString
	RequesterID core.UserIDString
	SetDate     core.SetDateString
}

func BuildQuery(teamID core.TeamIDString, requesterID core.UserIDString, setDate core.SetDateString) Query {
	return Query{
		TeamID:      teamID,
		RequesterID: requesterID,
		SetDate:     setDate,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
