package postgresengine

import (
	"context"
	"math"
	"time"

	"github.com/AntonStoeckl/teamquest/eventstore"
)

const (
	metricQueryDuration        = "eventstore_query_duration_seconds"
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricEventsQueried        = "eventstore_events_queried_total"
	metricEventsAppended       = "eventstore_events_appended_total"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"
	metricDatabaseErrors       = "eventstore_database_errors_total"

	spanNameQuery  = "eventstore.query"
	spanNameAppend = "eventstore.append"

	spanAttrOperation   = "operation"
	spanAttrEventCount  = "event_count"
	spanAttrErrorType   = "error_type"
	spanAttrEventTable  = "db.table"
	spanAttrExpectedSeq = "expected_sequence"

	labelStatus = "status"

	statusSuccess  = "success"
	statusError    = "error"
	statusConflict = "conflict"

	operationQuery  = "query"
	operationAppend = "append"

	errorTypeBuildQuery   = "build_query"
	errorTypeDatabase     = "database"
	errorTypeScan         = "row_scan"
	errorTypeRowsAffected = "rows_affected"
)

func (es EventStore) logDebug(ctx context.Context, msg string, args ...any) {
	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.DebugContext(ctx, msg, args...)
	case es.logger != nil:
		es.logger.Debug(msg, args...)
	}
}

func (es EventStore) logInfo(ctx context.Context, msg string, args ...any) {
	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.InfoContext(ctx, msg, args...)
	case es.logger != nil:
		es.logger.Info(msg, args...)
	}
}

func (es EventStore) logWarn(ctx context.Context, msg string, args ...any) {
	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.WarnContext(ctx, msg, args...)
	case es.logger != nil:
		es.logger.Warn(msg, args...)
	}
}

func (es EventStore) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.ErrorContext(ctx, msg, allArgs...)
	case es.logger != nil:
		es.logger.Error(msg, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func (es EventStore) recordDuration(ctx context.Context, metric string, d time.Duration, operation, status string) {
	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: operation, labelStatus: status}

	if contextual, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, d, labels)
		return
	}

	es.metricsCollector.RecordDuration(metric, d, labels)
}

func (es EventStore) recordValue(ctx context.Context, metric string, value float64, operation string) {
	if es.metricsCollector == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: operation}

	if contextual, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metric, value, labels)
		return
	}

	es.metricsCollector.RecordValue(metric, value, labels)
}

func (es EventStore) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if es.metricsCollector == nil {
		return
	}

	if contextual, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	es.metricsCollector.IncrementCounter(metric, labels)
}

func (es EventStore) recordError(ctx context.Context, operation, errorType string) {
	es.incrementCounter(
		ctx,
		metricDatabaseErrors,
		map[string]string{spanAttrOperation: operation, labelStatus: statusError, spanAttrErrorType: errorType},
	)
}

// startSpan returns a nil SpanContext when tracing is off. finishSpan accepts that.
func (es EventStore) startSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, eventstore.SpanContext) {
	if es.tracingCollector == nil {
		return ctx, nil
	}

	attrs[spanAttrEventTable] = es.eventTableName

	return es.tracingCollector.StartSpan(ctx, name, attrs)
}

func (es EventStore) finishSpan(span eventstore.SpanContext, status string, attrs map[string]string) {
	if es.tracingCollector == nil || span == nil {
		return
	}

	es.tracingCollector.FinishSpan(span, status, attrs)
}
