// Package eventstore provides the storage-agnostic building blocks of the TeamQuest event store.
//
// Every state change of the application (sign-ups, teams, invites, daily quest sets, completions,
// notification reads) is stored as an immutable event. There are no fixed streams: each command
// describes the slice of history it depends on with a Filter, queries it, decides, and appends
// its new events conditionally on the max sequence number of exactly that filter.
// This "dynamic consistency boundary" replaces row locks and unique constraints.
//
// Filters are built with a small fluent builder:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.MemberJoinedTeamEventType,
//			core.MemberLeftTeamEventType).
//		AndAnyPredicateOf(eventstore.P("TeamID", teamID.String())).
//		OrMatching().
//		AnyEventTypeOf(core.DailyQuestSetAssignedEventType).
//		AndAllPredicatesOf(
//			eventstore.P("TeamID", teamID.String()),
//			eventstore.P("SetDate", "2025-01-31")).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// ... decide ...
//	err = store.Append(ctx, filter, maxSeq, newEvent)
//
// Append returns ErrConcurrencyConflict when another writer appended an event matching the same
// filter in the meantime. Callers retry the whole Query-Decide-Append cycle.
package eventstore
