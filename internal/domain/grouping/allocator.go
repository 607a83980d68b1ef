// Package grouping splits a roster into balanced, named groups while
// avoiding pairs that already worked together.
//
// An allocation runs three steps on a private copy of the roster:
//   - rank people by the selected attributes (skipped when none is selected)
//   - shuffle, redrawing swaps that would recreate past pairs as neighbours
//   - cut the sequence into contiguous, size-balanced groups
//
// The result is best effort. Use the mixing package to check balance.
package grouping

import (
	"fmt"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/history"
	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

// DefaultMaxAttempts is the number of swap positions drawn per shuffle step.
const DefaultMaxAttempts = 10

// Result is the outcome of one allocation.
type Result struct {
	Groups []model.Group
	// Sorted is false when no criterion was selected and ranking was skipped.
	Sorted  bool
	Shuffle ShuffleStats
	// PairedPeople is how many people the draw history links to someone.
	PairedPeople int
}

// Allocator partitions rosters. It holds no per-call state and is safe for
// concurrent use unless built WithRand.
type Allocator struct {
	newRand     func() Rand
	ids         IDGenerator
	maxAttempts int
}

// New creates an Allocator with time-seeded randomness and UUID group ids.
func New(opts ...Option) *Allocator {
	a := &Allocator{
		newRand:     timeSeededRand,
		ids:         UUIDs{},
		maxAttempts: DefaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Allocate splits people into numberOfGroups groups named after groupNames.
// The returned groups reference the caller's Person values and together hold
// every person exactly once.
func (a *Allocator) Allocate(
	people []*model.Person,
	numberOfGroups int,
	groupNames []string,
	criteria model.Criteria,
	previousDraws []model.Draw,
) ([]model.Group, error) {
	res, err := a.Run(people, numberOfGroups, groupNames, criteria, previousDraws)
	if err != nil {
		return nil, err
	}
	return res.Groups, nil
}

// Run is Allocate with the ranking and shuffle statistics attached.
func (a *Allocator) Run(
	people []*model.Person,
	numberOfGroups int,
	groupNames []string,
	criteria model.Criteria,
	previousDraws []model.Draw,
) (Result, error) {
	if err := CheckGroupCount(len(people), numberOfGroups); err != nil {
		return Result{}, err
	}
	if len(groupNames) != numberOfGroups {
		return Result{}, fmt.Errorf("%w: %d names for %d groups", ErrNameCount, len(groupNames), numberOfGroups)
	}

	working := make([]*model.Person, len(people))
	copy(working, people)

	var res Result
	ranker := NewRanker(criteria.Enabled())
	if !ranker.Empty() {
		ranker.Sort(working)
		res.Sorted = true
	}

	pairs := history.Build(previousDraws)
	res.PairedPeople = pairs.Len()
	res.Shuffle = NewShuffler(a.newRand(), pairs, a.maxAttempts).Shuffle(working)

	res.Groups = a.slice(working, groupNames)
	return res, nil
}

// CheckGroupCount returns ErrGroupCount unless 1 <= groups <= people.
// Callers deriving anything from groups, such as default names, check first.
func CheckGroupCount(people, groups int) error {
	if groups < 1 || groups > people {
		return fmt.Errorf("%w: %d groups for %d people", ErrGroupCount, groups, people)
	}
	return nil
}

// slice cuts people into len(names) contiguous runs. The first n mod g runs
// get one extra person.
func (a *Allocator) slice(people []*model.Person, names []string) []model.Group {
	sizes := Sizes(len(people), len(names))
	groups := make([]model.Group, len(names))
	start := 0
	for i, name := range names {
		end := start + sizes[i]
		groups[i] = model.Group{
			ID:     a.ids.NewID(),
			Name:   name,
			People: people[start:end:end],
		}
		start = end
	}
	return groups
}

// Sizes returns the group sizes for n people in g groups: n mod g groups
// of ceil(n/g) first, then floor(n/g). g must be positive.
func Sizes(n, g int) []int {
	base, extra := n/g, n%g
	sizes := make([]int, g)
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}
