package dto

import (
	"time"

	"skill-gap/internal/domain/skillgap"

	"github.com/google/uuid"
)

type AnalysisRequest struct {
	Username string   `json:"username" validate:"required,max=100"`
	JobIDs   []string `json:"job_ids" validate:"required,min=1,dive,max=100"`
}

type PersonResponse struct {
	Name                 string `json:"name"`
	ProfessionalHeadline string `json:"professional_headline,omitempty"`
	Picture              string `json:"picture,omitempty"`
}

type JobSummaryResponse struct {
	ID            string   `json:"id"`
	Objective     string   `json:"objective"`
	Organizations []string `json:"organizations"`
	Remote        bool     `json:"remote"`
	Locations     []string `json:"locations"`
}

type JobComparisonResponse struct {
	Job        JobSummaryResponse         `json:"job"`
	Match      skillgap.MatchResult       `json:"match"`
	Categories []skillgap.CategorySummary `json:"categories"`
}

type AnalysisResponse struct {
	Username    string                  `json:"username"`
	Person      PersonResponse          `json:"person"`
	Comparisons []JobComparisonResponse `json:"comparisons"`
}

type HistoryItemResponse struct {
	ID           uuid.UUID                  `json:"id"`
	JobID        string                     `json:"job_id"`
	JobObjective string                     `json:"job_objective"`
	Match        skillgap.MatchResult       `json:"match"`
	Categories   []skillgap.CategorySummary `json:"categories"`
	CreatedAt    time.Time                  `json:"created_at"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}
