package analysis

import "sort"

// Variation is one named configuration that ran successfully.
type Variation struct {
	Name    string
	Summary Summary
}

// RankByEfficiency orders variations by efficiency estimate, best first.
// Ties go to the variation with the lower peak motor power.
func RankByEfficiency(vs []Variation) []Variation {
	out := make([]Variation, len(vs))
	copy(out, vs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Summary.Efficiency != out[j].Summary.Efficiency {
			return out[i].Summary.Efficiency > out[j].Summary.Efficiency
		}
		return out[i].Summary.MaxMotorPower < out[j].Summary.MaxMotorPower
	})
	return out
}
