package skillgap

import "strings"

// DefaultLevel is returned for labels missing from either rank table.
const DefaultLevel = 2

// DefaultExperience is assumed when a requirement carries no experience label.
const DefaultExperience = "potential-to-develop"

var proficiencyLevels = map[string]int{
	"master":                   5,
	"expert":                   4,
	"proficient":               3,
	"novice":                   2,
	"no-experience-interested": 1,
}

var experienceLevels = map[string]int{
	"5-plus-years":         5,
	"3-5-years":            4,
	"1-3-years":            3,
	"potential-to-develop": 2,
}

func ProficiencyRank(label string) int {
	return lookupRank(proficiencyLevels, label)
}

func ExperienceRank(label string) int {
	return lookupRank(experienceLevels, label)
}

func ProficiencyLevels() map[string]int {
	return copyLevels(proficiencyLevels)
}

func ExperienceLevels() map[string]int {
	return copyLevels(experienceLevels)
}

func lookupRank(levels map[string]int, label string) int {
	if v, ok := levels[strings.TrimSpace(label)]; ok {
		return v
	}
	return DefaultLevel
}

func copyLevels(levels map[string]int) map[string]int {
	out := make(map[string]int, len(levels))
	for k, v := range levels {
		out[k] = v
	}
	return out
}
