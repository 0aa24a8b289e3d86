package activeteams

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

type teamInfo struct {
	dissolved bool
	members   map[core.UserIDString]struct{}
}

// Project returns the teams that are not dissolved and have at least core.MinTeamSize members.
//
// Query Logic:
//
//	GIVEN: all team lifecycle and membership events
//	WHEN: ActiveTeams query is executed
//	THEN: ActiveTeams struct is returned
//	EXCLUDES: dissolved teams, teams with fewer than two members
func Project(history core.DomainEvents, _ Query, maxSequence uint) ActiveTeams {
	teams := make(map[core.TeamIDString]*teamInfo)
	var order []core.TeamIDString

	for _, event := range history {
		switch e := event.(type) {
		case core.TeamCreated:
			if _, ok := teams[e.TeamID]; !ok {
				teams[e.TeamID] = &teamInfo{members: make(map[core.UserIDString]struct{})}
				order = append(order, e.TeamID)
			}

		case core.TeamDissolved:
			if t, ok := teams[e.TeamID]; ok {
				t.dissolved = true
			}

		case core.MemberJoinedTeam:
			if t, ok := teams[e.TeamID]; ok {
				t.members[e.UserID] = struct{}{}
			}

		case core.MemberLeftTeam:
			if t, ok := teams[e.TeamID]; ok {
				delete(t.members, e.UserID)
			}
		}
	}

	result := ActiveTeams{TeamIDs: []core.TeamIDString{}, SequenceNumber: maxSequence}
	for _, teamID := range order {
		t := teams[teamID]
		if !t.dissolved && len(t.members) >= core.MinTeamSize {
			result.TeamIDs = append(result.TeamIDs, teamID)
		}
	}

	return result
}

// BuildEventFilter matches the lifecycle and membership events of all teams.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.TeamCreatedEventType,
			core.TeamDissolvedEventType,
			core.MemberJoinedTeamEventType,
			core.MemberLeftTeamEventType,
		).
		Finalize()
}
