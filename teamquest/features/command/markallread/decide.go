package markallread

import (
	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/features/command/markread"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Decide implements the business logic of marking all notifications as read.
//
// Business Rules:
//
//	GIVEN: a member of the team
//	WHEN: MarkAllNotificationsRead command is received
//	THEN: one NotificationRead event per unread notification is generated
//	REJECTED: team not found, user is not a member
//	IDEMPOTENCY: nothing is unread
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	team := core.ProjectTeam(history, command.TeamID)

	switch {
	case !team.Exists:
		return core.RejectedDecision(core.ErrTeamNotFound)
	case !team.HasMember(command.UserID):
		return core.RejectedDecision(core.ErrNotTeamMember)
	}

	read := core.ReadNotifications(history, command.TeamID, command.UserID)

	var events core.DomainEvents
	for _, n := range core.TeamNotifications(history, command.TeamID) {
		if read[n.ID] {
			continue
		}

		read[n.ID] = true
		events = append(events, core.BuildNotificationRead(command.TeamID, command.UserID, n.ID, command.OccurredAt))
	}

	if len(events) == 0 {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(events[0], events[1:]...)
}

// BuildEventFilter is the same boundary as marking a single notification read.
func BuildEventFilter(teamID core.TeamIDString, userID core.UserIDString) eventstore.Filter {
	return markread.BuildEventFilter(teamID, userID)
}
