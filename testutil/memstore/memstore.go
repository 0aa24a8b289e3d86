// Package memstore is an in-memory event store for handler tests.
//
// It implements the Query and Append contract of postgresengine, including the conditional append
// on the max sequence number of a filter, but matches predicates against top-level string fields only.
package memstore

import (
	"context"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/teamquest/eventstore"
)

// EventStore keeps all events in memory.
type EventStore struct {
	mu              sync.Mutex
	events          eventstore.StorableEvents
	conflictsToFake int
	appendCalls     int
}

func New() *EventStore {
	return &EventStore{}
}

// FailNextAppends makes the next n appends fail with eventstore.ErrConcurrencyConflict.
func (s *EventStore) FailNextAppends(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conflictsToFake = n
}

// AppendCalls counts all Append calls, including failed ones.
func (s *EventStore) AppendCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendCalls
}

// Events returns a copy of all stored events in sequence order.
func (s *EventStore) Events() eventstore.StorableEvents {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append(eventstore.StorableEvents(nil), s.events...)
}

// Seed appends events unconditionally.
func (s *EventStore) Seed(events ...eventstore.StorableEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendLocked(events)
}

func (s *EventStore) Query(
	ctx context.Context,
	filter eventstore.Filter,
) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint, error) {

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	matching, maxSequenceNumber := s.matching(filter)

	return matching, maxSequenceNumber, nil
}

func (s *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	storableEvent eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.appendCalls++

	if s.conflictsToFake > 0 {
		s.conflictsToFake--
		return eventstore.ErrConcurrencyConflict
	}

	if _, maxSequenceNumber := s.matching(filter); maxSequenceNumber != expectedMaxSequenceNumber {
		return eventstore.ErrConcurrencyConflict
	}

	s.appendLocked(append(eventstore.StorableEvents{storableEvent}, additionalEvents...))

	return nil
}

func (s *EventStore) appendLocked(events eventstore.StorableEvents) {
	for _, event := range events {
		s.events = append(s.events, event.WithSequenceNumber(eventstore.MaxSequenceNumberUint(len(s.events)+1)))
	}
}

func (s *EventStore) matching(filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint) {
	var matching eventstore.StorableEvents
	var maxSequenceNumber eventstore.MaxSequenceNumberUint

	for _, event := range s.events {
		if !matches(filter, event) {
			continue
		}

		matching = append(matching, event)
		maxSequenceNumber = event.SequenceNumber
	}

	return matching, maxSequenceNumber
}

func matches(filter eventstore.Filter, event eventstore.StorableEvent) bool {
	if filter.MatchesAnyEvent() {
		return true
	}

	var payload map[string]any
	_ = jsoniter.ConfigFastest.Unmarshal(event.PayloadJSON, &payload)

	for _, item := range filter.Items() {
		if matchesItem(item, event.EventType, payload) {
			return true
		}
	}

	return false
}

func matchesItem(item eventstore.FilterItem, eventType string, payload map[string]any) bool {
	if types := item.EventTypes(); len(types) > 0 && !slices.Contains(types, eventType) {
		return false
	}

	predicates := item.Predicates()
	if len(predicates) == 0 {
		return true
	}

	matched := 0
	for _, p := range predicates {
		if v, ok := payload[p.Key()].(string); ok && v == p.Val() {
			matched++
		}
	}

	if item.AllPredicatesMustMatch() {
		return matched == len(predicates)
	}

	return matched > 0
}
