// Package spies contains test doubles that record what the event store and the handlers report
// through the observability interfaces.
package spies
