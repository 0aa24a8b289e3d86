package eventstore

import (
	"cmp"
	"slices"
)

type FilterEventTypeString = string
type FilterKeyString = string
type FilterValString = string

/***** Filter *****/

// Filter describes a "dynamic event stream": the union of all its FilterItems.
// A Filter without items matches every event.
type Filter struct {
	items []FilterItem
}

func (f Filter) Items() []FilterItem {
	return f.items
}

// MatchesAnyEvent is true for the empty filter.
func (f Filter) MatchesAnyEvent() bool {
	return len(f.items) == 0
}

/***** FilterItem *****/

// FilterItem matches events whose type is one of EventTypes AND whose payload satisfies the Predicates.
// Predicates are OR-ed unless AllPredicatesMustMatch is set. Empty parts do not restrict.
type FilterItem struct {
	eventTypes             []FilterEventTypeString
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

func (fi FilterItem) EventTypes() []FilterEventTypeString {
	return fi.eventTypes
}

func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

/***** FilterPredicate *****/

// FilterPredicate matches a top-level string field of the event payload.
type FilterPredicate struct {
	key FilterKeyString
	val FilterValString
}

// P is the short constructor for FilterPredicate, e.g. P("TeamID", teamID.String()).
func P(key FilterKeyString, val FilterValString) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

func (fp FilterPredicate) Key() FilterKeyString {
	return fp.key
}

func (fp FilterPredicate) Val() FilterValString {
	return fp.val
}

/***** FilterBuilder *****/

// FilterBuilder only allows combinations that are useful for a consistency boundary:
//
//   - empty filter (any event)
//   - (eventType OR eventType...)
//   - (predicate OR predicate...) / (predicate AND predicate...)
//   - ((eventType OR eventType...) AND (predicate OR predicate...))
//   - ((eventType OR eventType...) AND (predicate AND predicate...))
//   - any number of the above, OR-ed with OrMatching()
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// MatchingAnyEvent directly creates an empty Filter.
	MatchingAnyEvent() Filter
}

type EmptyFilterItemBuilder interface {
	AnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) FilterItemBuilderLackingPredicates
	AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
	AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilderLackingEventTypes
}

type FilterItemBuilderLackingPredicates interface {
	AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) CompletedFilterItemBuilder
	CompletedFilterItemBuilder
}

type FilterItemBuilderLackingEventTypes interface {
	AndAnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) CompletedFilterItemBuilder
	CompletedFilterItemBuilder
}

type CompletedFilterItemBuilder interface {
	// OrMatching closes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize closes the current FilterItem and returns the Filter.
	Finalize() Filter
}

// filterBuilder is a value type, so every step works on a copy and partially built filters can be reused.
type filterBuilder struct {
	filter  Filter
	current FilterItem
}

// BuildEventFilter creates a FilterBuilder which must eventually be finalized with Finalize() or MatchingAnyEvent().
func BuildEventFilter() FilterBuilder {
	return filterBuilder{}
}

func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.current = FilterItem{}

	return fb
}

func (fb filterBuilder) MatchingAnyEvent() Filter {
	return Filter{}
}

func (fb filterBuilder) AnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) FilterItemBuilderLackingPredicates {

	fb.current.eventTypes = sanitizeEventTypes(append(slices.Clone(fb.current.eventTypes), append([]string{eventType}, eventTypes...)...))

	return fb
}

func (fb filterBuilder) AndAnyEventTypeOf(
	eventType FilterEventTypeString,
	eventTypes ...FilterEventTypeString,
) CompletedFilterItemBuilder {

	return fb.AnyEventTypeOf(eventType, eventTypes...)
}

func (fb filterBuilder) AnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.current.allPredicatesMustMatch = false
	fb.current.predicates = sanitizePredicates(append([]FilterPredicate{predicate}, predicates...))

	return fb
}

func (fb filterBuilder) AndAnyPredicateOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AnyPredicateOf(predicate, predicates...)
}

func (fb filterBuilder) AllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) FilterItemBuilderLackingEventTypes {

	fb.current.allPredicatesMustMatch = true
	fb.current.predicates = sanitizePredicates(append([]FilterPredicate{predicate}, predicates...))

	return fb
}

func (fb filterBuilder) AndAllPredicatesOf(
	predicate FilterPredicate,
	predicates ...FilterPredicate,
) CompletedFilterItemBuilder {

	return fb.AllPredicatesOf(predicate, predicates...)
}

func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter = fb.closeCurrentItem()
	fb.current = FilterItem{}

	return fb
}

func (fb filterBuilder) Finalize() Filter {
	return fb.closeCurrentItem()
}

// closeCurrentItem appends the current item unless it would not restrict anything.
func (fb filterBuilder) closeCurrentItem() Filter {
	if len(fb.current.eventTypes) == 0 && len(fb.current.predicates) == 0 {
		return fb.filter
	}

	items := slices.Clone(fb.filter.items)
	items = append(items, fb.current)

	return Filter{items: items}
}

// sanitizeEventTypes removes empty EventTypes, sorts them and removes duplicates.
func sanitizeEventTypes(eventTypes []FilterEventTypeString) []FilterEventTypeString {
	eventTypes = slices.DeleteFunc(eventTypes, func(e FilterEventTypeString) bool {
		return e == ""
	})
	slices.Sort(eventTypes)

	return slices.Clip(slices.Compact(eventTypes))
}

// sanitizePredicates removes partial predicates (key or val is ""), sorts them and removes duplicates.
func sanitizePredicates(predicates []FilterPredicate) []FilterPredicate {
	predicates = slices.DeleteFunc(predicates, func(p FilterPredicate) bool {
		return p.key == "" || p.val == ""
	})
	slices.SortFunc(predicates, func(a, b FilterPredicate) int {
		return cmp.Or(cmp.Compare(a.key, b.key), cmp.Compare(a.val, b.val))
	})

	return slices.Clip(slices.Compact(predicates))
}
