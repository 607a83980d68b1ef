package model

import (
	"fmt"
	"strings"
)

// Attribute names one mixable person attribute.
type Attribute string

// Mixable attributes, in the order the engine applies them.
const (
	AttrGender         Attribute = "gender"
	AttrFrenchFluency  Attribute = "frenchFluency"
	AttrFormerDWWM     Attribute = "formerDWWM"
	AttrTechnicalLevel Attribute = "technicalLevel"
	AttrProfile        Attribute = "profile"
	AttrAge            Attribute = "age"
)

// Attributes lists every mixable attribute in application order.
func Attributes() []Attribute {
	return []Attribute{
		AttrGender,
		AttrFrenchFluency,
		AttrFormerDWWM,
		AttrTechnicalLevel,
		AttrProfile,
		AttrAge,
	}
}

// ParseAttribute resolves a case-insensitive attribute name.
func ParseAttribute(s string) (Attribute, error) {
	s = strings.TrimSpace(s)
	for _, a := range Attributes() {
		if strings.EqualFold(string(a), s) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAttribute, s)
}

// Criteria selects which attributes an allocation tries to spread.
type Criteria struct {
	MixGender         bool `json:"mixGender" yaml:"mixGender"`
	MixFrenchFluency  bool `json:"mixFrenchFluency" yaml:"mixFrenchFluency"`
	MixFormerDWWM     bool `json:"mixFormerDWWM" yaml:"mixFormerDWWM"`
	MixTechnicalLevel bool `json:"mixTechnicalLevel" yaml:"mixTechnicalLevel"`
	MixProfile        bool `json:"mixProfile" yaml:"mixProfile"`
	MixAge            bool `json:"mixAge" yaml:"mixAge"`
}

// AllCriteria enables every attribute, the form default.
func AllCriteria() Criteria {
	return Criteria{
		MixGender:         true,
		MixFrenchFluency:  true,
		MixFormerDWWM:     true,
		MixTechnicalLevel: true,
		MixProfile:        true,
		MixAge:            true,
	}
}

// CriteriaFor enables exactly the given attributes.
func CriteriaFor(attrs ...Attribute) Criteria {
	var c Criteria
	for _, a := range attrs {
		switch a {
		case AttrGender:
			c.MixGender = true
		case AttrFrenchFluency:
			c.MixFrenchFluency = true
		case AttrFormerDWWM:
			c.MixFormerDWWM = true
		case AttrTechnicalLevel:
			c.MixTechnicalLevel = true
		case AttrProfile:
			c.MixProfile = true
		case AttrAge:
			c.MixAge = true
		}
	}
	return c
}

// Enabled returns the selected attributes in application order.
func (c Criteria) Enabled() []Attribute {
	flags := []bool{
		c.MixGender,
		c.MixFrenchFluency,
		c.MixFormerDWWM,
		c.MixTechnicalLevel,
		c.MixProfile,
		c.MixAge,
	}
	var out []Attribute
	for i, a := range Attributes() {
		if flags[i] {
			out = append(out, a)
		}
	}
	return out
}

// Any reports whether at least one attribute is selected.
func (c Criteria) Any() bool {
	return len(c.Enabled()) > 0
}
