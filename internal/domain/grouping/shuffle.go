package grouping

import (
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/history"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

// Rand is the random source used by the shuffle. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ShuffleStats reports how hard the shuffle had to work.
type ShuffleStats struct {
	// Redraws counts candidate positions rejected for recreating a past pair.
	Redraws int `json:"redraws" yaml:"redraws"`
	// Forced counts swaps made after every attempt for a position conflicted.
	Forced int `json:"forced" yaml:"forced"`
}

// Shuffler is a Fisher-Yates shuffle that redraws the swap position when
// the swap would put two past group mates next to each other.
//
// Sequence adjacency only approximates group membership: two past mates can
// still land in the same contiguous slice without ever being neighbours.
type Shuffler struct {
	rng         Rand
	pairs       *history.Index
	maxAttempts int
}

// NewShuffler returns a shuffler over rng. maxAttempts below 1 is raised to 1.
func NewShuffler(rng Rand, pairs *history.Index, maxAttempts int) *Shuffler {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Shuffler{rng: rng, pairs: pairs, maxAttempts: maxAttempts}
}

// Shuffle permutes people in place. Callers pass a private copy.
func (s *Shuffler) Shuffle(people []*model.Person) ShuffleStats {
	var stats ShuffleStats
	for i := len(people) - 1; i > 0; i-- {
		j := 0
		clean := false
		for attempt := 0; attempt < s.maxAttempts; attempt++ {
			j = s.rng.Intn(i + 1)
			if !s.conflicts(people, i, j) {
				clean = true
				break
			}
			stats.Redraws++
		}
		if !clean {
			stats.Forced++
		}
		people[i], people[j] = people[j], people[i]
	}
	return stats
}

// conflicts reports whether swapping pos1 and pos2 would place either person
// next to a past group mate, judged on the neighbours in the current order.
func (s *Shuffler) conflicts(people []*model.Person, pos1, pos2 int) bool {
	id1 := people[pos1].ID
	id2 := people[pos2].ID
	return s.pairedWithNeighbour(people, pos1, id2) || s.pairedWithNeighbour(people, pos2, id1)
}

func (s *Shuffler) pairedWithNeighbour(people []*model.Person, pos, id int) bool {
	if pos > 0 && s.pairs.Paired(people[pos-1].ID, id) {
		return true
	}
	if pos < len(people)-1 && s.pairs.Paired(people[pos+1].ID, id) {
		return true
	}
	return false
}
