package spies

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/teamquest/eventstore"
)

// SpanSpy is the eventstore.SpanContext handed out by TracingCollectorSpy.
type SpanSpy struct {
	mu         sync.Mutex
	status     string
	attributes map[string]string
}

func (c *SpanSpy) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

func (c *SpanSpy) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}
	c.attributes[key] = value
}

// SpanRecord is one started span, completed by FinishSpan.
type SpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Status          string
	EndAttributes   map[string]string
	Finished        bool
	span            *SpanSpy
}

// TracingCollectorSpy records started and finished spans.
type TracingCollectorSpy struct {
	mu      sync.Mutex
	records []SpanRecord
}

func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, eventstore.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := &SpanSpy{}
	s.records = append(s.records, SpanRecord{Name: name, StartAttributes: maps.Clone(attrs), span: span})

	return ctx, span
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	span, ok := spanCtx.(*SpanSpy)
	if !ok {
		return
	}

	for i := range s.records {
		if s.records[i].span == span {
			s.records[i].Status = status
			s.records[i].EndAttributes = maps.Clone(attrs)
			s.records[i].Finished = true

			return
		}
	}
}

// Records returns a copy of all span records in start order.
func (s *TracingCollectorSpy) Records() []SpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpanRecord(nil), s.records...)
}

// FinishedWithStatus reports whether a span named name was finished with status.
func (s *TracingCollectorSpy) FinishedWithStatus(name, status string) bool {
	for _, r := range s.Records() {
		if r.Name == name && r.Finished && r.Status == status {
			return true
		}
	}

	return false
}
