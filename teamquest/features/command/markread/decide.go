package markread

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

// Decide implements the business logic of marking a notification as read.
//
// Business Rules:
//
//	GIVEN: a member of the team and a notification of that team
//	WHEN: MarkNotificationRead command is received
//	THEN: NotificationRead event is generated
//	REJECTED: malformed notification ID, team not found, user is not a member, notification not found
//	IDEMPOTENCY: the user already read the notification
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if _, err := uuid.Parse(command.NotificationID); err != nil {
		return core.RejectedDecision(core.ErrInvalidNotification)
	}

	team := core.ProjectTeam(history, command.TeamID)

	switch {
	case !team.Exists:
		return core.RejectedDecision(core.ErrTeamNotFound)
	case !team.HasMember(command.UserID):
		return core.RejectedDecision(core.ErrNotTeamMember)
	case !notificationExists(history, command.TeamID, command.NotificationID):
		return core.RejectedDecision(core.ErrNotificationNotFound)
	case core.ReadNotifications(history, command.TeamID, command.UserID)[command.NotificationID]:
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(
		core.BuildNotificationRead(command.TeamID, command.UserID, command.NotificationID, command.OccurredAt),
	)
}

func notificationExists(history core.DomainEvents, teamID core.TeamIDString, notificationID core.NotificationIDString) bool {
	for _, n := range core.TeamNotifications(history, teamID) {
		if n.ID == notificationID {
			return true
		}
	}

	return false
}

// BuildEventFilter matches the team's members, every event that produces a notification for the team,
// and the notifications userID has read.
func BuildEventFilter(teamID core.TeamIDString, userID core.UserIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.TeamCreatedEventType,
			core.TeamDissolvedEventType,
			core.MemberJoinedTeamEventType,
			core.MemberLeftTeamEventType,
			core.DailyQuestSetAssignedEventType,
			core.QuestCompletedEventType,
			core.TeamRankedUpEventType,
		).
		AndAnyPredicateOf(eventstore.P("TeamID", teamID)).
		OrMatching().
		AnyEventTypeOf(core.NotificationReadEventType).
		AndAllPredicatesOf(
			eventstore.P("TeamID", teamID),
			eventstore.P("UserID", userID),
		).
		Finalize()
}
