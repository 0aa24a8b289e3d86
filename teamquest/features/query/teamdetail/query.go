package teamdetail

import (
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

const (
	queryType = "TeamDetail"
)

// Query asks for TeamID on behalf of RequesterID.
type Query struct {
	TeamID      core.TeamIDString
	RequesterID core.UserIDString
}

func BuildQuery(teamID core.TeamIDString, requesterID core.UserIDString) Query {
	return Query{
		TeamID:      teamID,
		RequesterID: requesterID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
