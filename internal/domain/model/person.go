// Package model contains the value types shared by the grouping engine,
// the roster store and the HTTP layer.
package model

import (
	"fmt"
	"strings"
)

// Person field bounds accepted by Validate.
const (
	MinNameLength = 3
	MaxNameLength = 50
	MinLevel      = 1
	MaxLevel      = 4
	MinAge        = 1
	MaxAge        = 99
)

// Gender is a categorical attribute. String order is the fixed category
// order used when sorting.
type Gender string

// Known genders.
const (
	GenderMale         Gender = "male"
	GenderFemale       Gender = "female"
	GenderNotSpecified Gender = "not_specified"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderNotSpecified:
		return true
	}
	return false
}

// Profile describes how at ease a person is in a group.
type Profile string

// Known profiles.
const (
	ProfileShy         Profile = "shy"
	ProfileReserved    Profile = "reserved"
	ProfileComfortable Profile = "comfortable"
)

// Valid reports whether p is one of the known profiles.
func (p Profile) Valid() bool {
	switch p {
	case ProfileShy, ProfileReserved, ProfileComfortable:
		return true
	}
	return false
}

// Person is one roster member. The engine only ever reads it.
type Person struct {
	ID             int     `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	Gender         Gender  `json:"gender" yaml:"gender"`
	FrenchFluency  int     `json:"frenchFluency" yaml:"frenchFluency"`
	FormerDWWM     bool    `json:"formerDWWM" yaml:"formerDWWM"`
	TechnicalLevel int     `json:"technicalLevel" yaml:"technicalLevel"`
	Profile        Profile `json:"profile" yaml:"profile"`
	Age            int     `json:"age" yaml:"age"`
}

// Validate checks the attribute bounds enforced by the roster forms.
// The ID is not checked; stores assign it.
func (p Person) Validate() error {
	name := strings.TrimSpace(p.Name)
	switch {
	case len(name) < MinNameLength || len(name) > MaxNameLength:
		return fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidPerson, MinNameLength, MaxNameLength)
	case !p.Gender.Valid():
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidPerson, p.Gender)
	case p.FrenchFluency < MinLevel || p.FrenchFluency > MaxLevel:
		return fmt.Errorf("%w: frenchFluency must be %d-%d", ErrInvalidPerson, MinLevel, MaxLevel)
	case p.TechnicalLevel < MinLevel || p.TechnicalLevel > MaxLevel:
		return fmt.Errorf("%w: technicalLevel must be %d-%d", ErrInvalidPerson, MinLevel, MaxLevel)
	case !p.Profile.Valid():
		return fmt.Errorf("%w: unknown profile %q", ErrInvalidPerson, p.Profile)
	case p.Age < MinAge || p.Age > MaxAge:
		return fmt.Errorf("%w: age must be %d-%d", ErrInvalidPerson, MinAge, MaxAge)
	}
	return nil
}
