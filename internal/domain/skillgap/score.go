package skillgap

import "math"

const (
	BonusCap      = 0.2
	PartialCredit = 0.5
	WeightDivisor = 100.0
)

type MatchResult struct {
	Matched       []ClassifiedSkill `json:"matched"`
	Partial       []ClassifiedSkill `json:"partial"`
	Missing       []ClassifiedSkill `json:"missing"`
	SimpleScore   int               `json:"score"`
	WeightedScore int               `json:"weighted_score"`
	TotalRequired int               `json:"total_required"`
}

// Compare classifies the required skills and scores the result. It keeps no
// state between calls and never modifies its inputs.
func Compare(candidate []CandidateSkill, required []RequiredSkill) MatchResult {
	c := Classify(candidate, required)
	return MatchResult{
		Matched:       c.Matched,
		Partial:       c.Partial,
		Missing:       c.Missing,
		SimpleScore:   SimpleScore(c),
		WeightedScore: WeightedScore(c),
		TotalRequired: c.TotalRequired,
	}
}

// Categories aggregates the result's tiers per category.
func (r MatchResult) Categories() []CategorySummary {
	return Aggregate(r.Matched, r.Partial, r.Missing)
}

func SimpleScore(c Classification) int {
	total := c.TotalRequired
	if total < 1 {
		total = 1
	}
	obtained := float64(len(c.Matched)) + PartialCredit*float64(len(c.Partial))
	return percent(obtained / float64(total))
}

// WeightedScore gives every required skill a weight of one. Matched skills earn
// an extra bonus from the candidate's reported strength, capped at BonusCap;
// partial skills earn PartialCredit regardless of strength.
func WeightedScore(c Classification) int {
	var totalWeight, matchedWeight float64
	for _, s := range c.Matched {
		totalWeight++
		matchedWeight += 1 + StrengthBonus(s.Weight)
	}
	for range c.Partial {
		totalWeight++
		matchedWeight += PartialCredit
	}
	totalWeight += float64(len(c.Missing))

	if totalWeight <= 0 {
		return 0
	}
	return percent(matchedWeight / totalWeight)
}

// StrengthBonus assumes weights reported on a 0-100 scale.
func StrengthBonus(weight *float64) float64 {
	if weight == nil || math.IsNaN(*weight) {
		return 0
	}
	return math.Min(*weight/WeightDivisor, BonusCap)
}

func percent(ratio float64) int {
	v := math.Floor(ratio*100 + 0.5)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
