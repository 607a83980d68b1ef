package mixing

import (
	"strconv"

	"github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"
)

// Age bands, upper bounds inclusive.
const (
	AgeUnder25 = "<25"
	Age25To35  = "25-35"
	Age36To45  = "36-45"
	AgeOver45  = ">45"
)

// bucketFunc discretizes one attribute into a category key.
type bucketFunc func(p *model.Person) string

var buckets = map[model.Attribute]bucketFunc{
	model.AttrGender: func(p *model.Person) string { return string(p.Gender) },
	model.AttrFrenchFluency: func(p *model.Person) string {
		return strconv.Itoa(p.FrenchFluency)
	},
	model.AttrFormerDWWM: func(p *model.Person) string {
		if p.FormerDWWM {
			return "yes"
		}
		return "no"
	},
	model.AttrTechnicalLevel: func(p *model.Person) string {
		return strconv.Itoa(p.TechnicalLevel)
	},
	model.AttrProfile: func(p *model.Person) string { return string(p.Profile) },
	model.AttrAge:     func(p *model.Person) string { return AgeBand(p.Age) },
}

// AgeBand returns the age bucket for age.
func AgeBand(age int) string {
	switch {
	case age < 25:
		return AgeUnder25
	case age <= 35:
		return Age25To35
	case age <= 45:
		return Age36To45
	default:
		return AgeOver45
	}
}

// Bucket returns the category key of p for attr, or "" for an unknown attribute.
func Bucket(attr model.Attribute, p *model.Person) string {
	f, ok := buckets[attr]
	if !ok {
		return ""
	}
	return f(p)
}
