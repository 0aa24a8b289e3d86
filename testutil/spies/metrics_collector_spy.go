package spies

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MetricsCollectorSpy records every call. It implements eventstore.ContextualMetricsCollector.
type MetricsCollectorSpy struct {
	mu        sync.Mutex
	durations []DurationRecord
	counters  []CounterRecord
	values    []ValueRecord
}

type DurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

type CounterRecord struct {
	Metric string
	Labels map[string]string
}

type ValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durations = append(s.durations, DurationRecord{Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = append(s.counters, CounterRecord{Metric: metric, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = append(s.values, ValueRecord{Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.RecordDuration(metric, duration, labels)
}

func (s *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.IncrementCounter(metric, labels)
}

func (s *MetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.RecordValue(metric, value, labels)
}

// HasDuration reports whether a duration was recorded for metric with all the given labels.
func (s *MetricsCollectorSpy) HasDuration(metric string, labels map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.durations {
		if r.Metric == metric && containsLabels(r.Labels, labels) {
			return true
		}
	}

	return false
}

// CounterCount returns how often metric was incremented with all the given labels.
func (s *MetricsCollectorSpy) CounterCount(metric string, labels map[string]string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, r := range s.counters {
		if r.Metric == metric && containsLabels(r.Labels, labels) {
			count++
		}
	}

	return count
}

// LastValue returns the most recent value recorded for metric.
func (s *MetricsCollectorSpy) LastValue(metric string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.values) - 1; i >= 0; i-- {
		if s.values[i].Metric == metric {
			return s.values[i].Value, true
		}
	}

	return 0, false
}

func containsLabels(have, want map[string]string) bool {
	for k, v := range want {
		if have[k] != v {
			return false
		}
	}

	return true
}
