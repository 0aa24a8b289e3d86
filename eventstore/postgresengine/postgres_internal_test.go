package postgresengine

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/eventstore/postgresengine/internal/adapters"
	"github.com/AntonStoeckl/teamquest/testutil/spies"
)

type fakeResult struct {
	rowsAffected int64
}

func (r fakeResult) RowsAffected() (int64, error) {
	return r.rowsAffected, nil
}

type fakeRow struct {
	eventType      string
	occurredAt     time.Time
	payload        []byte
	metadata       []byte
	sequenceNumber int64
}

type fakeRows struct {
	rows []fakeRow
	pos  int
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	*dest[0].(*string) = row.eventType
	*dest[1].(*time.Time) = row.occurredAt
	*dest[2].(*[]byte) = row.payload
	*dest[3].(*[]byte) = row.metadata
	*dest[4].(*int64) = row.sequenceNumber

	return nil
}

func (r *fakeRows) Err() error   { return nil }
func (r *fakeRows) Close() error { return nil }

type fakeDB struct {
	rows          []fakeRow
	rowsAffected  int64
	execErr       error
	lastLockName  string
	lastQuery     string
	lastQueryArgs []any
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (adapters.DBRows, error) {
	f.lastQuery = query
	f.lastQueryArgs = args

	return &fakeRows{rows: f.rows}, nil
}

func (f *fakeDB) Exec(_ context.Context, query string, _ ...any) (adapters.DBResult, error) {
	f.lastQuery = query
	return fakeResult{}, f.execErr
}

func (f *fakeDB) ExecSerialized(_ context.Context, lockName string, query string, args ...any) (adapters.DBResult, error) {
	f.lastLockName = lockName
	f.lastQuery = query
	f.lastQueryArgs = args

	if f.execErr != nil {
		return nil, f.execErr
	}

	return fakeResult{rowsAffected: f.rowsAffected}, nil
}

func (f *fakeDB) Ping(_ context.Context) error { return nil }

func givenStorableEvent(t *testing.T, eventType string, payload string) eventstore.StorableEvent {
	event, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, time.Now(), []byte(payload))
	require.NoError(t, err, "error in arranging test data")

	return event
}

func Test_WithTableName_RejectsInvalidNames(t *testing.T) {
	for name, tc := range map[string]struct {
		tableName string
		wantErr   error
	}{
		"empty":         {tableName: "", wantErr: eventstore.ErrEmptyEventsTableName},
		"uppercase":     {tableName: "Events", wantErr: eventstore.ErrInvalidEventsTableName},
		"injection":     {tableName: "events; DROP TABLE x", wantErr: eventstore.ErrInvalidEventsTableName},
		"leading digit": {tableName: "1events", wantErr: eventstore.ErrInvalidEventsTableName},
	} {
		t.Run(name, func(t *testing.T) {
			// act
			_, err := newEventStore(&fakeDB{}, []Option{WithTableName(tc.tableName)})

			// assert
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func Test_BuildSelectQuery_EmptyFilter_HasNoWhereClause(t *testing.T) {
	// arrange
	es, err := newEventStore(&fakeDB{}, nil)
	require.NoError(t, err)

	// act
	q, err := es.buildSelectQuery(eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	require.NoError(t, err)
	assert.NotContains(t, q.text, "WHERE")
	assert.Contains(t, q.text, `ORDER BY "sequence_number" ASC`)
	assert.Empty(t, q.args)
}

func Test_BuildSelectQuery_BindsEventTypesAndPredicatesAsParameters(t *testing.T) {
	// arrange
	es, err := newEventStore(&fakeDB{}, nil)
	require.NoError(t, err)

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("TeamCreated", "MemberJoinedTeam").
		AndAnyPredicateOf(eventstore.P("TeamID", `x"}' OR 1=1 --`)).
		Finalize()

	// act
	q, err := es.buildSelectQuery(filter)

	// assert
	require.NoError(t, err)
	assert.Contains(t, q.text, `"event_type" IN (`)
	assert.Contains(t, q.text, "payload @> $")
	assert.NotContains(t, q.text, "OR 1=1")
	assert.Contains(t, q.args, "TeamCreated")
	assert.Contains(t, q.args, "MemberJoinedTeam")
	assert.Contains(t, q.args, `{"TeamID":"x\"}' OR 1=1 --"}`)
}

func Test_BuildSelectQuery_AllPredicates_AreFoldedIntoOneDocument(t *testing.T) {
	// arrange
	es, err := newEventStore(&fakeDB{}, nil)
	require.NoError(t, err)

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf("DailyQuestSetAssigned").
		AndAllPredicatesOf(eventstore.P("TeamID", "t-1"), eventstore.P("SetDate", "2025-03-01")).
		Finalize()

	// act
	q, err := es.buildSelectQuery(filter)

	// assert
	require.NoError(t, err)
	assert.Contains(t, q.args, `{"SetDate":"2025-03-01","TeamID":"t-1"}`)
}

func Test_BuildInsertQuery_MultipleEvents_UsesUnionAndExpectedSequence(t *testing.T) {
	// arrange
	es, err := newEventStore(&fakeDB{}, nil)
	require.NoError(t, err)

	filter := eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("TeamID", "t-1")).
		Finalize()
	events := eventstore.StorableEvents{
		givenStorableEvent(t, "TeamCreated", `{"TeamID":"t-1"}`),
		givenStorableEvent(t, "MemberJoinedTeam", `{"TeamID":"t-1","UserID":"u-1"}`),
	}

	// act
	q, err := es.buildInsertQuery(events, filter, 42)

	// assert
	require.NoError(t, err)
	assert.Contains(t, q.text, "INSERT INTO")
	assert.Contains(t, q.text, "UNION ALL")
	assert.Contains(t, q.text, "COALESCE")
	assert.Contains(t, q.args, int64(42))
	assert.Contains(t, q.args, `{"TeamID":"t-1","UserID":"u-1"}`)
}

func Test_Append_FewerRowsAffected_IsConcurrencyConflict(t *testing.T) {
	// arrange
	db := &fakeDB{rowsAffected: 0}
	metrics := spies.NewMetricsCollectorSpy()
	tracing := spies.NewTracingCollectorSpy()
	es, err := newEventStore(db, []Option{WithMetrics(metrics), WithTracing(tracing)})
	require.NoError(t, err)

	// act
	err = es.Append(
		context.Background(),
		eventstore.BuildEventFilter().MatchingAnyEvent(),
		0,
		givenStorableEvent(t, "TeamCreated", `{"TeamID":"t-1"}`),
	)

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, defaultEventTableName, db.lastLockName)
	assert.Equal(t, 1, metrics.CounterCount(metricConcurrencyConflicts, nil))
	assert.True(t, tracing.FinishedWithStatus(spanNameAppend, statusConflict))
}

func Test_Append_AllRowsAffected_Succeeds(t *testing.T) {
	// arrange
	db := &fakeDB{rowsAffected: 2}
	logs := spies.NewLogHandlerSpy()
	metrics := spies.NewMetricsCollectorSpy()
	es, err := newEventStore(db, []Option{WithLogger(slog.New(logs)), WithMetrics(metrics)})
	require.NoError(t, err)

	// act
	err = es.Append(
		context.Background(),
		eventstore.BuildEventFilter().MatchingAnyEvent(),
		7,
		givenStorableEvent(t, "TeamCreated", `{"TeamID":"t-1"}`),
		givenStorableEvent(t, "MemberJoinedTeam", `{"TeamID":"t-1"}`),
	)

	// assert
	require.NoError(t, err)
	assert.True(t, logs.HasRecord(slog.LevelInfo, logMsgEventsAppended))
	assert.True(t, metrics.HasDuration(metricAppendDuration, map[string]string{labelStatus: statusSuccess}))

	appended, ok := metrics.LastValue(metricEventsAppended)
	assert.True(t, ok)
	assert.Equal(t, float64(2), appended)
}

func Test_Append_DatabaseError_IsWrapped(t *testing.T) {
	// arrange
	dbErr := errors.New("connection reset")
	es, err := newEventStore(&fakeDB{execErr: dbErr}, nil)
	require.NoError(t, err)

	// act
	err = es.Append(
		context.Background(),
		eventstore.BuildEventFilter().MatchingAnyEvent(),
		0,
		givenStorableEvent(t, "TeamCreated", `{"TeamID":"t-1"}`),
	)

	// assert
	assert.ErrorIs(t, err, eventstore.ErrAppendingEventFailed)
	assert.ErrorIs(t, err, dbErr)
}

func Test_Query_ReturnsEventsWithSequenceNumbersAndMax(t *testing.T) {
	// arrange
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	db := &fakeDB{rows: []fakeRow{
		{eventType: "TeamCreated", occurredAt: now, payload: []byte(`{"TeamID":"t-1"}`), metadata: []byte(`{}`), sequenceNumber: 3},
		{eventType: "MemberJoinedTeam", occurredAt: now, payload: []byte(`{"TeamID":"t-1"}`), metadata: []byte(`{}`), sequenceNumber: 9},
	}}
	es, err := newEventStore(db, nil)
	require.NoError(t, err)

	// act
	events, maxSeq, err := es.Query(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(9), maxSeq)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(3), events[0].SequenceNumber)
	assert.Equal(t, "MemberJoinedTeam", events[1].EventType)
}

func Test_Query_NoRows_ReturnsZeroMax(t *testing.T) {
	// arrange
	es, err := newEventStore(&fakeDB{}, nil)
	require.NoError(t, err)

	// act
	events, maxSeq, err := es.Query(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(0), maxSeq)
}

func Test_CreateSchema_UsesConfiguredTableName(t *testing.T) {
	// arrange
	db := &fakeDB{}
	es, err := newEventStore(db, []Option{WithTableName("quest_events")})
	require.NoError(t, err)

	// act
	err = es.CreateSchema(context.Background())

	// assert
	require.NoError(t, err)
	assert.Contains(t, db.lastQuery, "CREATE TABLE IF NOT EXISTS quest_events")
	assert.Contains(t, db.lastQuery, "quest_events_payload_idx")
	assert.NotContains(t, db.lastQuery, schemaTablePlaceholder)
}
