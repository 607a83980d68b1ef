package model

import "time"

// Group is one named slice of a partition. People are shared references
// into the caller's roster, never copies.
type Group struct {
	ID     string    `json:"id" yaml:"id"`
	Name   string    `json:"name" yaml:"name"`
	People []*Person `json:"people" yaml:"people"`
}

// Draw is a persisted partition of a roster. Once saved it is read-only
// and only feeds pair history.
type Draw struct {
	ID       string    `json:"id" yaml:"id"`
	Date     time.Time `json:"date" yaml:"date"`
	RosterID string    `json:"rosterId" yaml:"rosterId"`
	Groups   []Group   `json:"groups" yaml:"groups"`
	Criteria Criteria  `json:"criteria" yaml:"criteria"`
}

// Size returns the total number of people across groups.
func Size(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.People)
	}
	return n
}
