package grouping

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out group identities. Ids are provisional; a store may
// replace them when the partition is saved.
type IDGenerator interface {
	NewID() string
}

// UUIDs generates random UUIDv4 ids.
type UUIDs struct{}

// NewID returns a new random UUID string.
func (UUIDs) NewID() string {
	return uuid.NewString()
}

// SequenceIDs generates "<prefix>-1", "<prefix>-2", ... and is safe for
// concurrent use.
type SequenceIDs struct {
	prefix string
	n      atomic.Int64
}

// NewSequenceIDs returns a counter-backed generator.
func NewSequenceIDs(prefix string) *SequenceIDs {
	return &SequenceIDs{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (s *SequenceIDs) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}
