// Package postgresengine is the PostgreSQL implementation of the event store.
//
// Events live in a single append-only table. A "dynamic event stream" is whatever a
// eventstore.Filter selects from it, and Append only succeeds when that stream's highest
// sequence number is still the one observed by the preceding Query:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf("TeamCreated", "MemberJoinedTeam", "MemberLeftTeam").
//		AndAnyPredicateOf(eventstore.P("TeamID", teamID)).
//		Finalize()
//
//	events, maxSeq, err := es.Query(ctx, filter)
//	// ... decide ...
//	err = es.Append(ctx, filter, maxSeq, newEvent)
//	if errors.Is(err, eventstore.ErrConcurrencyConflict) {
//		// query again and retry
//	}
//
// Three connection types are supported: pgxpool.Pool, sql.DB (lib/pq) and sqlx.DB.
// With NewEventStoreFromPGXPoolAndReplica, queries carrying eventstore.WithEventualConsistency
// are served by the replica.
//
// Payload predicates are translated to JSONB containment (payload @> $n::jsonb) and always bound as parameters.
package postgresengine
