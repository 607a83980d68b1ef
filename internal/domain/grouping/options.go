package grouping

import (
	"math/rand"
	"time"
)

// Option applies a configuration option to the Allocator.
type Option func(*Allocator)

// WithRand makes every call draw from r. r is not safe for concurrent use,
// so this is meant for tests and single-threaded callers.
func WithRand(r Rand) Option {
	return func(a *Allocator) {
		if r != nil {
			a.newRand = func() Rand { return r }
		}
	}
}

// WithSeed gives every call its own generator seeded with seed, so equal
// inputs produce equal partitions.
func WithSeed(seed int64) Option {
	return func(a *Allocator) {
		a.newRand = func() Rand {
			return rand.New(rand.NewSource(seed)) //nolint:gosec // shuffling people, not secrets
		}
	}
}

// WithIDGenerator sets the group id generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(a *Allocator) {
		if ids != nil {
			a.ids = ids
		}
	}
}

// WithMaxAttempts sets how many swap positions the shuffle draws per step
// before swapping regardless.
func WithMaxAttempts(n int) Option {
	return func(a *Allocator) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

func timeSeededRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // shuffling people, not secrets
}
