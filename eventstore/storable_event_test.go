package eventstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	now := time.Now()
	validPayload := []byte(`{"TeamID": "0b5b"}`)
	validMetadata := []byte(`{"MessageID": "1"}`)

	testCases := []struct {
		name        string
		payload     []byte
		metadata    []byte
		expectedErr error
	}{
		{name: "broken payload", payload: []byte(`{"TeamID": nope}`), metadata: validMetadata, expectedErr: ErrInvalidPayloadJSON},
		{name: "broken metadata", payload: validPayload, metadata: []byte(`{"MessageID": }`), expectedErr: ErrInvalidMetadataJSON},
		{name: "empty payload", payload: []byte(``), metadata: validMetadata, expectedErr: ErrInvalidPayloadJSON},
		{name: "empty metadata", payload: validPayload, metadata: []byte(``), expectedErr: ErrInvalidMetadataJSON},
		{name: "nil payload", payload: nil, metadata: validMetadata, expectedErr: ErrInvalidPayloadJSON},
		{name: "nil metadata", payload: validPayload, metadata: nil, expectedErr: ErrInvalidMetadataJSON},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := BuildStorableEvent("QuestCompleted", now, tc.payload, tc.metadata)

			// assert
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_BuildStorableEvent_Success(t *testing.T) {
	// arrange
	occurredAt := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)
	payload := []byte(`{"TeamID": "0b5b", "Points": 40}`)
	metadata := []byte(`{"MessageID": "1", "CausationID": "1", "CorrelationID": "1"}`)

	// act
	event, err := BuildStorableEvent("QuestCompleted", occurredAt, payload, metadata)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "QuestCompleted", event.EventType)
	assert.Equal(t, occurredAt, event.OccurredAt)
	assert.Equal(t, payload, event.PayloadJSON)
	assert.Equal(t, metadata, event.MetadataJSON)
	assert.Zero(t, event.SequenceNumber)
}

func Test_BuildStorableEventWithEmptyMetadata(t *testing.T) {
	// act
	event, err := BuildStorableEventWithEmptyMetadata("TeamDissolved", time.Now(), []byte(`{"TeamID": "0b5b"}`))

	// assert
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(event.MetadataJSON))
}

func Test_StorableEvent_WithSequenceNumber_DoesNotMutateOriginal(t *testing.T) {
	// arrange
	event, err := BuildStorableEventWithEmptyMetadata("TeamDissolved", time.Now(), []byte(`{}`))
	require.NoError(t, err)

	// act
	numbered := event.WithSequenceNumber(42)

	// assert
	assert.Equal(t, MaxSequenceNumberUint(42), numbered.SequenceNumber)
	assert.Zero(t, event.SequenceNumber)
}
