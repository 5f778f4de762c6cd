package dto

import "skill-gap/internal/domain/skillgap"

type CandidateSkillRequest struct {
	Name        string  `json:"name" validate:"max=200"`
	Proficiency string  `json:"proficiency" validate:"max=100"`
	Weight      float64 `json:"weight" validate:"gte=0"`
}

type RequiredSkillRequest struct {
	Name       string `json:"name" validate:"max=200"`
	Experience string `json:"experience,omitempty" validate:"max=100"`
}

// Blank skill names are accepted here and ignored by the engine.
type CompareRequest struct {
	Candidate []CandidateSkillRequest `json:"candidate" validate:"max=500,dive"`
	Role      []RequiredSkillRequest  `json:"role" validate:"max=500,dive"`
}

func (r CompareRequest) CandidateSkills() []skillgap.CandidateSkill {
	out := make([]skillgap.CandidateSkill, 0, len(r.Candidate))
	for _, s := range r.Candidate {
		out = append(out, skillgap.CandidateSkill{Name: s.Name, Proficiency: s.Proficiency, Weight: s.Weight})
	}
	return out
}

func (r CompareRequest) RequiredSkills() []skillgap.RequiredSkill {
	out := make([]skillgap.RequiredSkill, 0, len(r.Role))
	for _, s := range r.Role {
		out = append(out, skillgap.RequiredSkill{Name: s.Name, Experience: s.Experience})
	}
	return out
}

type ComparisonResponse struct {
	Match      skillgap.MatchResult       `json:"match"`
	Categories []skillgap.CategorySummary `json:"categories"`
}
