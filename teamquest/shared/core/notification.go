package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies feed entries.
type NotificationType string

const (
	NotificationMemberCompleted NotificationType = "member_completed"
	NotificationTeamRankUp      NotificationType = "team_rank_up"
	NotificationDailyReady      NotificationType = "daily_ready"
	NotificationSystem          NotificationType = "system"
)

// notificationNamespace seeds the UUIDv5 notification IDs. Changing it changes every ID.
var notificationNamespace = uuid.MustParse("6f1c1a52-3c44-4d0e-9d4e-6a1f0b6b2f37")

// Notification is a team feed entry. It is not stored, it is derived from the event that caused it,
// so the same event always yields the same ID.
type Notification struct {
	ID        NotificationIDString
	TeamID    TeamIDString
	Type      NotificationType
	Message   string
	ActorID   UserIDString // empty for system-generated entries
	CreatedAt time.Time
}

// NotificationFromEvent derives the notification an event produces, if any.
func NotificationFromEvent(event DomainEvent) (Notification, bool) {
	switch e := event.(type) {
	case QuestCompleted:
		return Notification{
			ID:        notificationID(NotificationMemberCompleted, e.ItemID, e.UserID),
			TeamID:    e.TeamID,
			Type:      NotificationMemberCompleted,
			Message:   fmt.Sprintf("%s completed \"%s\"! +%dpt", e.DisplayName, e.QuestName, e.Points),
			ActorID:   e.UserID,
			CreatedAt: e.OccurredAt,
		}, true

	case TeamRankedUp:
		return Notification{
			ID:        notificationID(NotificationTeamRankUp, e.TeamID, e.To.String()),
			TeamID:    e.TeamID,
			Type:      NotificationTeamRankUp,
			Message:   fmt.Sprintf("Team rank went up: %s → %s!", e.From, e.To),
			CreatedAt: e.OccurredAt,
		}, true

	case DailyQuestSetAssigned:
		return Notification{
			ID:        notificationID(NotificationDailyReady, e.DailySetID),
			TeamID:    e.TeamID,
			Type:      NotificationDailyReady,
			Message:   fmt.Sprintf("Today's quests are ready (%s).", e.Difficulty),
			CreatedAt: e.OccurredAt,
		}, true

	case MemberJoinedTeam:
		if e.IsOwner {
			return Notification{}, false
		}

		return Notification{
			ID:        notificationID(NotificationSystem, e.TeamID, e.UserID),
			TeamID:    e.TeamID,
			Type:      NotificationSystem,
			Message:   fmt.Sprintf("%s joined the team.", e.DisplayName),
			ActorID:   e.UserID,
			CreatedAt: e.OccurredAt,
		}, true
	}

	return Notification{}, false
}

func notificationID(notificationType NotificationType, parts ...string) NotificationIDString {
	key := string(notificationType)
	for _, part := range parts {
		key += "/" + part
	}

	return uuid.NewSHA1(notificationNamespace, []byte(key)).String()
}

// TeamNotifications derives the notifications of teamID from history, oldest first.
func TeamNotifications(history DomainEvents, teamID TeamIDString) []Notification {
	var notifications []Notification

	for _, event := range history {
		if n, ok := NotificationFromEvent(event); ok && n.TeamID == teamID {
			notifications = append(notifications, n)
		}
	}

	return notifications
}

// ReadNotifications returns the IDs of the notifications userID has read in teamID.
func ReadNotifications(history DomainEvents, teamID TeamIDString, userID UserIDString) map[NotificationIDString]bool {
	read := make(map[NotificationIDString]bool)

	for _, event := range history {
		if e, ok := event.(NotificationRead); ok && e.TeamID == teamID && e.UserID == userID {
			read[e.NotificationID] = true
		}
	}

	return read
}
