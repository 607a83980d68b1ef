// Package mixing scores whether a partition spreads attributes evenly.
//
// For each selected attribute every person is put in a bucket (gender,
// fluency level, age band, ...). A bucket value seen more than once overall
// is expected ideal = total/groups times per group, with a tolerance of
// max(1, floor(ideal/2)). One group outside the tolerance fails the whole
// attribute, and one failed attribute fails the partition.
package mixing

import (
	"math"
	"sort"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

// deviationRatio is the share of the ideal count a group may deviate by.
const deviationRatio = 0.5

// Violation describes one bucket value that is unevenly spread.
type Violation struct {
	Value        string  `json:"value" yaml:"value"`
	Total        int     `json:"total" yaml:"total"`
	Ideal        float64 `json:"ideal" yaml:"ideal"`
	MaxDeviation int     `json:"maxDeviation" yaml:"maxDeviation"`
	// Counts holds the per-group count of Value, in group order.
	Counts []int `json:"counts" yaml:"counts"`
}

// CriterionResult is the verdict for one attribute.
type CriterionResult struct {
	Attribute  model.Attribute `json:"attribute" yaml:"attribute"`
	Balanced   bool            `json:"balanced" yaml:"balanced"`
	Violations []Violation     `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// Validate reports whether groups are balanced on every selected attribute.
// Zero or one group is always balanced.
func Validate(groups []model.Group, criteria model.Criteria) bool {
	if len(groups) <= 1 {
		return true
	}
	for _, attr := range criteria.Enabled() {
		if len(checkDistribution(groups, buckets[attr], true)) > 0 {
			return false
		}
	}
	return true
}

// Report returns one result per selected attribute, listing every violation.
// Validate is true exactly when every result is balanced.
func Report(groups []model.Group, criteria model.Criteria) []CriterionResult {
	attrs := criteria.Enabled()
	out := make([]CriterionResult, 0, len(attrs))
	for _, attr := range attrs {
		res := CriterionResult{Attribute: attr, Balanced: true}
		if len(groups) > 1 {
			res.Violations = checkDistribution(groups, buckets[attr], false)
			res.Balanced = len(res.Violations) == 0
		}
		out = append(out, res)
	}
	return out
}

// checkDistribution returns the bucket values that break the tolerance,
// sorted by value. With firstOnly it stops at the first one found.
func checkDistribution(groups []model.Group, bucket bucketFunc, firstOnly bool) []Violation {
	perGroup := make([]map[string]int, len(groups))
	totals := make(map[string]int)
	for i, g := range groups {
		perGroup[i] = make(map[string]int)
		for _, p := range g.People {
			if p == nil {
				continue
			}
			v := bucket(p)
			perGroup[i][v]++
			totals[v]++
		}
	}

	values := make([]string, 0, len(totals))
	for v := range totals {
		values = append(values, v)
	}
	sort.Strings(values)

	var violations []Violation
	for _, v := range values {
		total := totals[v]
		if total <= 1 {
			continue
		}
		ideal := float64(total) / float64(len(groups))
		maxDeviation := max(1, int(math.Floor(ideal*deviationRatio)))

		spread := true
		for _, counts := range perGroup {
			if math.Abs(float64(counts[v])-ideal) > float64(maxDeviation) {
				spread = false
				break
			}
		}
		if spread {
			continue
		}

		counts := make([]int, len(perGroup))
		for i, c := range perGroup {
			counts[i] = c[v]
		}
		violations = append(violations, Violation{
			Value:        v,
			Total:        total,
			Ideal:        ideal,
			MaxDeviation: maxDeviation,
			Counts:       counts,
		})
		if firstOnly {
			break
		}
	}
	return violations
}
