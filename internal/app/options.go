package service

import (
	"github.com/Moefedaily/Brief-creation-groupe/internal/adapters/repository"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/grouping"
	"github.com/Moefedaily/Brief-creation-groupe/pkg/logger"
	"github.com/Moefedaily/Brief-creation-groupe/pkg/metrics"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the roster store. Defaults to an in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDedupeSize sets the number of idempotency keys remembered. Zero keeps
// every key; negative values are ignored.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size >= 0 {
			s.dedupeSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to metrics.Default().
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithGroupPrefix sets the prefix of default group names ("Group 1", ...).
func WithGroupPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.groupPrefix = prefix
		}
	}
}

// WithShuffleMaxAttempts bounds redraws per shuffle step.
func WithShuffleMaxAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.allocatorOpts = append(s.allocatorOpts, grouping.WithMaxAttempts(n))
		}
	}
}

// WithSeed makes allocations reproducible. Zero keeps time seeding.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		if seed != 0 {
			s.allocatorOpts = append(s.allocatorOpts, grouping.WithSeed(seed))
		}
	}
}

// WithAllocatorOptions passes options straight to the grouping engine.
func WithAllocatorOptions(opts ...grouping.Option) Option {
	return func(s *Service) {
		s.allocatorOpts = append(s.allocatorOpts, opts...)
	}
}
