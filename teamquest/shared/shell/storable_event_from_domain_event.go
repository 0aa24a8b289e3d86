package shell

import (
	"errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/teamquest/shared/core"
)

var (
	// ErrMappingToStorableEventFailedForDomainEvent is returned when domain event serialization fails.
	ErrMappingToStorableEventFailedForDomainEvent = errors.New("mapping to storable event failed for domain event")

	// ErrMappingToStorableEventFailedForMetadata is returned when metadata serialization fails.
	ErrMappingToStorableEventFailedForMetadata = errors.New("mapping to storable event failed for metadata")
)

// payloadJSON uses sorted map keys so that payloads are byte-stable.
var payloadJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// StorableEventFrom converts a DomainEvent and EventMetadata to a StorableEvent.
func StorableEventFrom(event core.DomainEvent, metadata EventMetadata) (eventstore.StorableEvent, error) {
	payload, err := payloadJSON.Marshal(event)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailedForDomainEvent, err)
	}

	metadataJSON, err := payloadJSON.Marshal(metadata)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailedForMetadata, err)
	}

	storableEvent, err := eventstore.BuildStorableEvent(event.IsEventType(), event.HasOccurredAt(), payload, metadataJSON)
	if err != nil {
		return eventstore.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailedForDomainEvent, err)
	}

	return storableEvent, nil
}

// StorableEventsFrom converts all events a decision produced. They share one correlation ID,
// the first event causes the following ones.
func StorableEventsFrom(events core.DomainEvents) (eventstore.StorableEvents, error) {
	correlationID := uuid.New()
	causationID := correlationID
	storableEvents := make(eventstore.StorableEvents, 0, len(events))

	for _, event := range events {
		messageID := uuid.New()

		storableEvent, err := StorableEventFrom(event, BuildEventMetadata(messageID, causationID, correlationID))
		if err != nil {
			return nil, err
		}

		storableEvents = append(storableEvents, storableEvent)
		causationID = messageID
	}

	return storableEvents, nil
}
