// Package history indexes who has already shared a group with whom.
package history

import "github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"

// Index is an undirected co-membership graph keyed by person id. Every past
// co-membership counts once regardless of how recent or how frequent.
type Index struct {
	pairs map[int]map[int]struct{}
}

// Build unions the co-memberships of every group of every draw.
func Build(draws []model.Draw) *Index {
	idx := &Index{pairs: make(map[int]map[int]struct{})}
	for _, d := range draws {
		for _, g := range d.Groups {
			idx.addGroup(g.People)
		}
	}
	return idx
}

func (idx *Index) addGroup(people []*model.Person) {
	for i := 0; i < len(people); i++ {
		for j := i + 1; j < len(people); j++ {
			if people[i] == nil || people[j] == nil {
				continue
			}
			idx.link(people[i].ID, people[j].ID)
			idx.link(people[j].ID, people[i].ID)
		}
	}
}

func (idx *Index) link(a, b int) {
	set, ok := idx.pairs[a]
	if !ok {
		set = make(map[int]struct{})
		idx.pairs[a] = set
	}
	set[b] = struct{}{}
}

// Paired reports whether a and b were ever in the same group.
func (idx *Index) Paired(a, b int) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.pairs[a][b]
	return ok
}

// Len returns the number of people with at least one recorded partner.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.pairs)
}
