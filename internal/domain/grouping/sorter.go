package grouping

import (
	"slices"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

// delta is one attribute's contribution to the pairwise ranking score.
type delta func(a, b *model.Person) int

var deltas = map[model.Attribute]delta{
	model.AttrGender: func(a, b *model.Person) int {
		return categoryDelta(string(a.Gender), string(b.Gender))
	},
	model.AttrFrenchFluency: func(a, b *model.Person) int {
		return a.FrenchFluency - b.FrenchFluency
	},
	model.AttrFormerDWWM: func(a, b *model.Person) int {
		switch {
		case a.FormerDWWM == b.FormerDWWM:
			return 0
		case a.FormerDWWM:
			return -1
		default:
			return 1
		}
	},
	model.AttrTechnicalLevel: func(a, b *model.Person) int {
		return a.TechnicalLevel - b.TechnicalLevel
	},
	model.AttrProfile: func(a, b *model.Person) int {
		return categoryDelta(string(a.Profile), string(b.Profile))
	},
	model.AttrAge: func(a, b *model.Person) int {
		return a.Age - b.Age
	},
}

func categoryDelta(a, b string) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// Ranker orders people by the sum of the per-attribute deltas of its
// attributes. It is a single aggregate score, not a multi-key sort, so the
// resulting order is only a coarse seed for the shuffle.
type Ranker struct {
	deltas []delta
}

// NewRanker builds a ranker over attrs. Unknown attributes are ignored.
func NewRanker(attrs []model.Attribute) Ranker {
	r := Ranker{deltas: make([]delta, 0, len(attrs))}
	for _, a := range attrs {
		if d, ok := deltas[a]; ok {
			r.deltas = append(r.deltas, d)
		}
	}
	return r
}

// Compare returns the signed aggregate score of a against b.
func (r Ranker) Compare(a, b *model.Person) int {
	score := 0
	for _, d := range r.deltas {
		score += d(a, b)
	}
	return score
}

// Empty reports whether the ranker has no attribute to rank on.
func (r Ranker) Empty() bool {
	return len(r.deltas) == 0
}

// Sort orders people in place. The aggregate comparator is not guaranteed
// to be transitive; a stable sort keeps the result well defined anyway.
func (r Ranker) Sort(people []*model.Person) {
	if r.Empty() {
		return
	}
	slices.SortStableFunc(people, r.Compare)
}
