// Package dedupe remembers idempotency keys so a retried save of the same
// draw is recognised instead of stored twice.
package dedupe

import (
	"context"
	"sync"
)

const defaultMaxSize = 10_000

// Deduper records idempotency keys.
type Deduper interface {
	// SeenAndRecord reports whether key was already recorded and records it
	// if not. The check and the record happen atomically.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord forgets key so the operation it guarded can be retried.
	Unrecord(ctx context.Context, key string)

	Size() int64
}

// keyTracker keeps keys in a map plus an insertion-ordered ring used for
// oldest-first eviction when bounded.
type keyTracker struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string
	head    int
	maxSize int
}

// New creates an in-memory Deduper.
func New(opts ...Option) Deduper {
	t := &keyTracker{maxSize: defaultMaxSize}

	for _, opt := range opts {
		opt(t)
	}

	t.seen = make(map[string]struct{})
	return t
}

func (t *keyTracker) SeenAndRecord(_ context.Context, key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[key]; ok {
		return true
	}
	if t.maxSize > 0 && len(t.seen) >= t.maxSize {
		t.evictOldest()
	}
	t.seen[key] = struct{}{}
	t.order = append(t.order, key)
	return false
}

func (t *keyTracker) Unrecord(_ context.Context, key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.seen[key]; !ok {
		return
	}
	delete(t.seen, key)
	for i := t.head; i < len(t.order); i++ {
		if t.order[i] == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// evictOldest drops the oldest live key. Must be called with t.mu held.
func (t *keyTracker) evictOldest() {
	for t.head < len(t.order) {
		key := t.order[t.head]
		t.order[t.head] = ""
		t.head++
		if _, ok := t.seen[key]; ok {
			delete(t.seen, key)
			break
		}
	}
	// compact once the dead prefix dominates
	if t.head > len(t.order)/2 {
		t.order = append([]string(nil), t.order[t.head:]...)
		t.head = 0
	}
}

func (t *keyTracker) Size() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return int64(len(t.seen))
}
