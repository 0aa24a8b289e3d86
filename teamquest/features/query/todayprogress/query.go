package todayprogress

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	queryType = "TodayProgress"
)

// Query asks for the progress of TeamID on SetDate as seen by RequesterID.
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
