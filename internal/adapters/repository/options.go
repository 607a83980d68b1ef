package repository

import (
	"time"

	"github.com/Moefedaily/Brief-creation-groupe/pkg/metrics"
)

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithIDGenerator sets the generator for roster and missing group ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *MemoryStore) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithClock sets the time source used to stamp saved draws.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics sets the metrics manager the store reports to.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *MemoryStore) {
		if m != nil {
			s.metrics = m
		}
	}
}
