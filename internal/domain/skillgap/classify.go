package skillgap

import "strings"

type Tier string

const (
	TierMatched Tier = "matched"
	TierPartial Tier = "partial"
	TierMissing Tier = "missing"
)

type CandidateSkill struct {
	Name        string  `json:"name"`
	Proficiency string  `json:"proficiency"`
	Weight      float64 `json:"weight"`
}

// RequiredSkill is one role requirement. An empty Experience means the role
// did not state one and DefaultExperience applies.
type RequiredSkill struct {
	Name       string `json:"name"`
	Experience string `json:"experience,omitempty"`
}

type ClassifiedSkill struct {
	Name        string   `json:"name"`
	Tier        Tier     `json:"status"`
	Proficiency string   `json:"user_proficiency,omitempty"`
	Experience  string   `json:"required_experience,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
}

type Classification struct {
	Matched       []ClassifiedSkill
	Partial       []ClassifiedSkill
	Missing       []ClassifiedSkill
	TotalRequired int
}

// SkillKey is the join key between candidate and required skills.
func SkillKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Classify joins every required skill against the candidate's skills and puts it
// in exactly one tier. Skills with a blank name on either side are ignored.
// When the candidate lists the same key twice the later entry wins.
func Classify(candidate []CandidateSkill, required []RequiredSkill) Classification {
	byKey := make(map[string]CandidateSkill, len(candidate))
	for _, cs := range candidate {
		k := SkillKey(cs.Name)
		if k == "" {
			continue
		}
		byKey[k] = cs
	}

	out := Classification{
		Matched: make([]ClassifiedSkill, 0),
		Partial: make([]ClassifiedSkill, 0),
		Missing: make([]ClassifiedSkill, 0),
	}

	n := 0
	for _, r := range required {
		k := SkillKey(r.Name)
		if k == "" {
			continue
		}
		n++

		cs, ok := byKey[k]
		if !ok {
			out.Missing = append(out.Missing, ClassifiedSkill{
				Name:       r.Name,
				Tier:       TierMissing,
				Experience: r.Experience,
			})
			continue
		}

		weight := cs.Weight
		item := ClassifiedSkill{
			Name:        r.Name,
			Proficiency: cs.Proficiency,
			Experience:  r.Experience,
			Weight:      &weight,
		}
		if Meets(cs.Proficiency, r.Experience) {
			item.Tier = TierMatched
			out.Matched = append(out.Matched, item)
		} else {
			item.Tier = TierPartial
			out.Partial = append(out.Partial, item)
		}
	}

	out.TotalRequired = n
	if out.TotalRequired < 1 {
		out.TotalRequired = 1
	}
	return out
}

// Meets reports whether a proficiency label clears an experience requirement.
// Equal levels count as meeting the bar.
func Meets(proficiency, experience string) bool {
	if strings.TrimSpace(experience) == "" {
		experience = DefaultExperience
	}
	return ProficiencyRank(proficiency) >= ExperienceRank(experience)
}
