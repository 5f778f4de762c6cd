package dto

import "skill-gap/internal/infrastructure/torre"

type StrengthResponse struct {
	Name        string  `json:"name"`
	Proficiency string  `json:"proficiency"`
	Weight      float64 `json:"weight"`
}

type ProfileResponse struct {
	Username  string             `json:"username"`
	Person    PersonResponse     `json:"person"`
	Strengths []StrengthResponse `json:"strengths"`
}

type JobSearchItemResponse struct {
	ID            string              `json:"id"`
	Objective     string              `json:"objective"`
	Organizations []string            `json:"organizations"`
	Remote        bool                `json:"remote"`
	Locations     []string            `json:"locations"`
	Compensation  *torre.Compensation `json:"compensation,omitempty"`
}

type JobSearchResponse struct {
	Query   string                  `json:"query"`
	Total   int                     `json:"total"`
	Results []JobSearchItemResponse `json:"results"`
}

func OrganizationNames(orgs []torre.Organization) []string {
	out := make([]string, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, o.Name)
	}
	return out
}
