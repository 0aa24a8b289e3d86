// Package oteladapters implements the eventstore observability interfaces on top of OpenTelemetry.
//
// The same adapters are used by the TeamQuest command and query handlers, so that event store
// spans, handler spans and log records share one trace.
package oteladapters
