package spies

import (
	"context"
	"log/slog"
	"sync"
)

// LogHandlerSpy is a slog.Handler that keeps every record.
type LogHandlerSpy struct {
	mu      sync.Mutex
	records []slog.Record
}

func NewLogHandlerSpy() *LogHandlerSpy {
	return &LogHandlerSpy{}
}

func (s *LogHandlerSpy) Handle(_ context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record.Clone())

	return nil
}

func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// HasRecord reports whether a record with level and message was logged.
func (s *LogHandlerSpy) HasRecord(level slog.Level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.records {
		if r.Level == level && r.Message == message {
			return true
		}
	}

	return false
}

// Count returns the number of captured records.
func (s *LogHandlerSpy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}
