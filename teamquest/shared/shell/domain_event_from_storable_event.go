package shell

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	payload := storableEvent.PayloadJSON

	switch storableEvent.EventType {
	case core.UserSignedUpEventType:
		return unmarshal[core.UserSignedUp](payload)
	case core.SigningUpFailedEventType:
		return unmarshal[core.SigningUpFailed](payload)
	case core.TeamCreatedEventType:
		return unmarshal[core.TeamCreated](payload)
	case core.CreatingTeamFailedEventType:
		return unmarshal[core.CreatingTeamFailed](payload)
	case core.MemberJoinedTeamEventType:
		return unmarshal[core.MemberJoinedTeam](payload)
	case core.MemberLeftTeamEventType:
		return unmarshal[core.MemberLeftTeam](payload)
	case core.JoiningTeamFailedEventType:
		return unmarshal[core.JoiningTeamFailed](payload)
	case core.InviteCodeIssuedEventType:
		return unmarshal[core.InviteCodeIssued](payload)
	case core.InviteCodeDeactivatedEventType:
		return unmarshal[core.InviteCodeDeactivated](payload)
	case core.TeamDissolvedEventType:
		return unmarshal[core.TeamDissolved](payload)
	case core.DailyQuestSetAssignedEventType:
		return unmarshal[core.DailyQuestSetAssigned](payload)
	case core.QuestCompletedEventType:
		return unmarshal[core.QuestCompleted](payload)
	case core.CompletingQuestFailedEventType:
		return unmarshal[core.CompletingQuestFailed](payload)
	case core.TeamRankedUpEventType:
		return unmarshal[core.TeamRankedUp](payload)
	case core.NotificationReadEventType:
		return unmarshal[core.NotificationRead](payload)
	}

	return nil, errors.Join(
		ErrMappingToDomainEventFailed,
		fmt.Errorf("%w: %s", ErrMappingToDomainEventUnknownEventType, storableEvent.EventType),
	)
}

func unmarshal[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
