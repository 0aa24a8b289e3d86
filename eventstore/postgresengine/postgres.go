package postgresengine

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/teamquest/eventstore"
	"github.com/AntonStoeckl/teamquest/eventstore/postgresengine/internal/adapters"
)

const (
	defaultEventTableName          = "events"
	schemaTablePlaceholder         = "{{table}}"
	logMsgBuildSelectQueryFailed   = "failed to build select query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgBuildInsertQueryFailed   = "failed to build insert query"
	logMsgDBExecFailed             = "database execution failed during event append"
	logMsgRowsAffectedFailed       = "failed to get rows affected count"
	logMsgSchemaFailed             = "failed to create events schema"
	logMsgQueryCompleted           = "eventstore operation: query completed"
	logMsgEventsAppended           = "eventstore operation: events appended"
	logMsgConcurrencyConflict      = "eventstore operation: concurrency conflict detected"
	logMsgSchemaCreated            = "eventstore operation: schema created"
	logMsgSQLExecuted              = "executed sql for: "
	logAttrError                   = "error"
	logAttrQuery                   = "query"
	logAttrTable                   = "table"
	logAttrEventType               = "event_type"
	logAttrEventCount              = "event_count"
	logAttrDurationMS              = "duration_ms"
	logAttrExpectedEvents          = "expected_events"
	logAttrRowsAffected            = "rows_affected"
	logAttrExpectedSequence        = "expected_sequence"
	colEventType                   = "event_type"
	colOccurredAt                  = "occurred_at"
	colPayload                     = "payload"
	colMetadata                    = "metadata"
	colSequenceNumber              = "sequence_number"
	cteContext                     = "context"
	cteVals                        = "vals"
	dialectPostgres                = "postgres"
	aliasMaxSeq                    = "max_seq"
	castText                       = "?::text"
	castTimestamp                  = "?::timestamptz"
	castJsonb                      = "?::jsonb"
	payloadContains                = "payload @> ?::jsonb"
)

//go:embed schema.sql
var schemaSQL string

type sqlQuery struct {
	text string
	args []any
}

// EventStore appends and queries events in one PostgreSQL table.
// The zero value is not usable, use one of the constructors.
type EventStore struct {
	db               adapters.DBAdapter
	eventTableName   string
	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
	tracingCollector eventstore.TracingCollector
}

// NewEventStoreFromPGXPool creates a new EventStore using a pgx Pool with optional configuration.
func NewEventStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapter(db, nil), options)
}

// NewEventStoreFromPGXPoolAndReplica is like NewEventStoreFromPGXPool, but queries running under
// eventstore.WithEventualConsistency go to the replica. Appends always use the primary.
func NewEventStoreFromPGXPoolAndReplica(primary *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (EventStore, error) {
	if primary == nil || replica == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapter(primary, replica), options)
}

// NewEventStoreFromSQLDB creates a new EventStore using a sql.DB with optional configuration.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapter(db, nil), options)
}

// NewEventStoreFromSQLX creates a new EventStore using a sqlx.DB with optional configuration.
func NewEventStoreFromSQLX(db *sqlx.DB, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLXAdapter(db, nil), options)
}

func newEventStore(db adapters.DBAdapter, options []Option) (EventStore, error) {
	es := EventStore{
		db:             db,
		eventTableName: defaultEventTableName,
	}

	for _, option := range options {
		if err := option(&es); err != nil {
			return EventStore{}, err
		}
	}

	return es, nil
}

// TableName returns the configured events table.
func (es EventStore) TableName() string {
	return es.eventTableName
}

// Ping checks the primary connection.
func (es EventStore) Ping(ctx context.Context) error {
	return es.db.Ping(ctx)
}

// CreateSchema creates the events table and its indexes if they do not exist.
func (es EventStore) CreateSchema(ctx context.Context) error {
	ddl := strings.ReplaceAll(schemaSQL, schemaTablePlaceholder, es.eventTableName)

	if _, err := es.db.Exec(ctx, ddl); err != nil {
		es.logError(ctx, logMsgSchemaFailed, err, logAttrTable, es.eventTableName)
		return errors.Join(eventstore.ErrCreatingSchemaFailed, err)
	}

	es.logInfo(ctx, logMsgSchemaCreated, logAttrTable, es.eventTableName)

	return nil
}

// Query returns all events matching the filter in sequence order, together with the
// highest sequence number of this "dynamic event stream" (0 if it is empty).
func (es EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	ctx, span := es.startSpan(ctx, spanNameQuery, map[string]string{spanAttrOperation: operationQuery})
	start := time.Now()

	events, maxSequenceNumber, err := es.query(ctx, filter)
	duration := time.Since(start)

	if err != nil {
		es.recordDuration(ctx, metricQueryDuration, duration, operationQuery, statusError)
		es.finishSpan(span, statusError, nil)

		return eventstore.StorableEvents{}, 0, err
	}

	es.recordDuration(ctx, metricQueryDuration, duration, operationQuery, statusSuccess)
	es.recordValue(ctx, metricEventsQueried, float64(len(events)), operationQuery)
	es.finishSpan(span, statusSuccess, map[string]string{spanAttrEventCount: strconv.Itoa(len(events))})
	es.logInfo(ctx, logMsgQueryCompleted, logAttrEventCount, len(events), logAttrDurationMS, toMilliseconds(duration))

	return events, maxSequenceNumber, nil
}

func (es EventStore) query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	q, buildErr := es.buildSelectQuery(filter)
	if buildErr != nil {
		es.logError(ctx, logMsgBuildSelectQueryFailed, buildErr)
		es.recordError(ctx, operationQuery, errorTypeBuildQuery)

		return nil, 0, buildErr
	}

	start := time.Now()
	rows, queryErr := es.db.Query(ctx, q.text, q.args...)
	es.logDebug(ctx, logMsgSQLExecuted+operationQuery, logAttrDurationMS, toMilliseconds(time.Since(start)), logAttrQuery, q.text)

	if queryErr != nil {
		es.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, q.text)
		es.recordError(ctx, operationQuery, errorTypeDatabase)

		return nil, 0, errors.Join(eventstore.ErrQueryingEventsFailed, queryErr)
	}

	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			es.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}()

	return es.scanRows(ctx, rows)
}

func (es EventStore) scanRows(ctx context.Context, rows adapters.DBRows) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	var (
		eventType      string
		occurredAt     time.Time
		payload        []byte
		metadata       []byte
		sequenceNumber int64
	)

	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for rows.Next() {
		if err := rows.Scan(&eventType, &occurredAt, &payload, &metadata, &sequenceNumber); err != nil {
			es.logError(ctx, logMsgScanRowFailed, err)
			es.recordError(ctx, operationQuery, errorTypeScan)

			return nil, 0, errors.Join(eventstore.ErrScanningDBRowFailed, err)
		}

		// drivers may reuse the scan buffers
		event, err := eventstore.BuildStorableEvent(
			eventType,
			occurredAt.UTC(),
			append([]byte(nil), payload...),
			append([]byte(nil), metadata...),
		)
		if err != nil {
			es.logError(ctx, logMsgBuildStorableEventFailed, err, logAttrEventType, eventType)

			return nil, 0, errors.Join(eventstore.ErrBuildingStorableEventFailed, err)
		}

		maxSequenceNumber = eventstore.MaxSequenceNumberUint(sequenceNumber)
		eventStream = append(eventStream, event.WithSequenceNumber(maxSequenceNumber))
	}

	if err := rows.Err(); err != nil {
		es.logError(ctx, logMsgScanRowFailed, err)
		es.recordError(ctx, operationQuery, errorTypeScan)

		return nil, 0, errors.Join(eventstore.ErrScanningDBRowFailed, err)
	}

	return eventStream, maxSequenceNumber, nil
}

// Append stores one or more events atomically, but only if the "dynamic event stream" selected by filter
// still has expectedMaxSequenceNumber as its highest sequence number. Otherwise, nothing is stored and
// eventstore.ErrConcurrencyConflict is returned.
//
// The filter must be the one used for the Query that the business decision was based on.
func (es EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	ctx, span := es.startSpan(
		ctx,
		spanNameAppend,
		map[string]string{
			spanAttrOperation:   operationAppend,
			spanAttrEventCount:  strconv.Itoa(len(allEvents)),
			spanAttrExpectedSeq: strconv.FormatUint(uint64(expectedMaxSequenceNumber), 10),
		},
	)
	start := time.Now()

	err := es.append(ctx, filter, expectedMaxSequenceNumber, allEvents)
	duration := time.Since(start)

	switch {
	case errors.Is(err, eventstore.ErrConcurrencyConflict):
		es.recordDuration(ctx, metricAppendDuration, duration, operationAppend, statusConflict)
		es.incrementCounter(ctx, metricConcurrencyConflicts, map[string]string{spanAttrOperation: operationAppend})
		es.finishSpan(span, statusConflict, nil)

		return err

	case err != nil:
		es.recordDuration(ctx, metricAppendDuration, duration, operationAppend, statusError)
		es.finishSpan(span, statusError, nil)

		return err
	}

	es.recordDuration(ctx, metricAppendDuration, duration, operationAppend, statusSuccess)
	es.recordValue(ctx, metricEventsAppended, float64(len(allEvents)), operationAppend)
	es.finishSpan(span, statusSuccess, nil)
	es.logInfo(ctx, logMsgEventsAppended, logAttrEventCount, len(allEvents), logAttrDurationMS, toMilliseconds(duration))

	return nil
}

func (es EventStore) append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	allEvents eventstore.StorableEvents,
) error {

	q, buildErr := es.buildInsertQuery(allEvents, filter, expectedMaxSequenceNumber)
	if buildErr != nil {
		es.logError(ctx, logMsgBuildInsertQueryFailed, buildErr, logAttrEventCount, len(allEvents))
		es.recordError(ctx, operationAppend, errorTypeBuildQuery)

		return buildErr
	}

	start := time.Now()
	result, execErr := es.db.ExecSerialized(ctx, es.eventTableName, q.text, q.args...)
	es.logDebug(ctx, logMsgSQLExecuted+operationAppend, logAttrDurationMS, toMilliseconds(time.Since(start)), logAttrQuery, q.text)

	if execErr != nil {
		es.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, q.text)
		es.recordError(ctx, operationAppend, errorTypeDatabase)

		return errors.Join(eventstore.ErrAppendingEventFailed, execErr)
	}

	rowsAffected, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		es.logError(ctx, logMsgRowsAffectedFailed, rowsErr)
		es.recordError(ctx, operationAppend, errorTypeRowsAffected)

		return errors.Join(eventstore.ErrGettingRowsAffectedFailed, rowsErr)
	}

	if rowsAffected < int64(len(allEvents)) {
		es.logInfo(
			ctx,
			logMsgConcurrencyConflict,
			logAttrExpectedEvents, len(allEvents),
			logAttrRowsAffected, rowsAffected,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
		)

		return eventstore.ErrConcurrencyConflict
	}

	return nil
}

func (es EventStore) buildSelectQuery(filter eventstore.Filter) (sqlQuery, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(es.eventTableName).
		Prepared(true).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	where, whereErr := buildWhereExpression(filter)
	if whereErr != nil {
		return sqlQuery{}, errors.Join(eventstore.ErrBuildingQueryFailed, whereErr)
	}

	if where != nil {
		selectStmt = selectStmt.Where(where)
	}

	text, args, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return sqlQuery{}, errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery{text: text, args: args}, nil
}

// buildInsertQuery builds
//
//	WITH context AS (SELECT MAX(sequence_number) AS max_seq FROM events WHERE <filter>),
//	     vals AS (SELECT ... UNION ALL SELECT ...)
//	INSERT INTO events (...) SELECT vals.* FROM context, vals WHERE COALESCE(max_seq, 0) = <expected>
//
// so the insert is a no-op when the stream has moved on.
func (es EventStore) buildInsertQuery(
	events eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (sqlQuery, error) {

	builder := goqu.Dialect(dialectPostgres)

	cteStmt := builder.
		From(es.eventTableName).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq))

	where, whereErr := buildWhereExpression(filter)
	if whereErr != nil {
		return sqlQuery{}, errors.Join(eventstore.ErrBuildingQueryFailed, whereErr)
	}

	if where != nil {
		cteStmt = cteStmt.Where(where)
	}

	var valuesStmt *goqu.SelectDataset
	for _, event := range events {
		eventStmt := builder.Select(
			goqu.L(castText, event.EventType).As(colEventType),
			goqu.L(castTimestamp, event.OccurredAt.UTC()).As(colOccurredAt),
			goqu.L(castJsonb, string(event.PayloadJSON)).As(colPayload),
			goqu.L(castJsonb, string(event.MetadataJSON)).As(colMetadata),
		)

		if valuesStmt == nil {
			valuesStmt = eventStmt
			continue
		}

		valuesStmt = valuesStmt.UnionAll(eventStmt)
	}

	insertStmt := builder.
		Insert(es.eventTableName).
		Prepared(true).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		With(cteContext, cteStmt).
		With(cteVals, valuesStmt).
		FromQuery(
			builder.From(cteContext, cteVals).
				Select(
					goqu.T(cteVals).Col(colEventType),
					goqu.T(cteVals).Col(colOccurredAt),
					goqu.T(cteVals).Col(colPayload),
					goqu.T(cteVals).Col(colMetadata),
				).
				Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(int64(expectedMaxSequenceNumber))),
		)

	text, args, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return sqlQuery{}, errors.Join(eventstore.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery{text: text, args: args}, nil
}

// buildWhereExpression returns nil for a filter that matches any event.
func buildWhereExpression(filter eventstore.Filter) (goqu.Expression, error) {
	if filter.MatchesAnyEvent() {
		return nil, nil
	}

	itemExpressions := make([]goqu.Expression, 0, len(filter.Items()))

	for _, item := range filter.Items() {
		parts := make([]goqu.Expression, 0, 2)

		if eventTypes := item.EventTypes(); len(eventTypes) > 0 {
			parts = append(parts, goqu.C(colEventType).In(eventTypes))
		}

		predicatesExpression, err := buildPredicatesExpression(item)
		if err != nil {
			return nil, err
		}

		if predicatesExpression != nil {
			parts = append(parts, predicatesExpression)
		}

		itemExpressions = append(itemExpressions, goqu.And(parts...))
	}

	return goqu.Or(itemExpressions...), nil
}

// buildPredicatesExpression folds AND-ed predicates into one containment document, which
// is a single lookup in the GIN index. OR-ed predicates get one document each.
func buildPredicatesExpression(item eventstore.FilterItem) (goqu.Expression, error) {
	predicates := item.Predicates()
	if len(predicates) == 0 {
		return nil, nil
	}

	if item.AllPredicatesMustMatch() && !hasRepeatedKey(predicates) {
		doc := make(map[string]string, len(predicates))
		for _, predicate := range predicates {
			doc[predicate.Key()] = predicate.Val()
		}

		docJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(doc)
		if err != nil {
			return nil, err
		}

		return goqu.L(payloadContains, string(docJSON)), nil
	}

	expressions := make([]goqu.Expression, 0, len(predicates))
	for _, predicate := range predicates {
		docJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(map[string]string{predicate.Key(): predicate.Val()})
		if err != nil {
			return nil, err
		}

		expressions = append(expressions, goqu.L(payloadContains, string(docJSON)))
	}

	if item.AllPredicatesMustMatch() {
		return goqu.And(expressions...), nil
	}

	return goqu.Or(expressions...), nil
}

// hasRepeatedKey relies on predicates being sorted by key, which the filter builder guarantees.
func hasRepeatedKey(predicates []eventstore.FilterPredicate) bool {
	for i := 1; i < len(predicates); i++ {
		if predicates[i].Key() == predicates[i-1].Key() {
			return true
		}
	}

	return false
}
