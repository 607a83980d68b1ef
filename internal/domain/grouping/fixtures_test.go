package grouping_test

import "github.com/Moefedaily/Brief-creation-groupe/internal/domain/model"

func roster() []*model.Person {
	return []*model.Person{
		{ID: 1, Name: "John Doe", Gender: model.GenderMale, FrenchFluency: 3, FormerDWWM: true, TechnicalLevel: 2, Profile: model.ProfileComfortable, Age: 25},
		{ID: 2, Name: "Jane Smith", Gender: model.GenderFemale, FrenchFluency: 4, FormerDWWM: false, TechnicalLevel: 3, Profile: model.ProfileReserved, Age: 30},
		{ID: 3, Name: "Alex Johnson", Gender: model.GenderNotSpecified, FrenchFluency: 2, FormerDWWM: true, TechnicalLevel: 4, Profile: model.ProfileShy, Age: 22},
		{ID: 4, Name: "Maria Garcia", Gender: model.GenderFemale, FrenchFluency: 1, FormerDWWM: false, TechnicalLevel: 1, Profile: model.ProfileComfortable, Age: 28},
		{ID: 5, Name: "Pierre Dubois", Gender: model.GenderMale, FrenchFluency: 4, FormerDWWM: true, TechnicalLevel: 3, Profile: model.ProfileReserved, Age: 35},
		{ID: 6, Name: "Sophie Martin", Gender: model.GenderFemale, FrenchFluency: 3, FormerDWWM: false, TechnicalLevel: 2, Profile: model.ProfileShy, Age: 26},
	}
}

func ids(people []*model.Person) []int {
	out := make([]int, len(people))
	for i, p := range people {
		out[i] = p.ID
	}
	return out
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "Group " + string(rune('A'+i))
	}
	return out
}

// scriptedRand replays fixed draws and counts calls.
type scriptedRand struct {
	draws []int
	calls int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.draws[r.calls%len(r.draws)] % n
	r.calls++
	return v
}
