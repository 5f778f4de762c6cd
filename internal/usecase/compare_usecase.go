package usecase

import (
	"context"

	"skill-gap/internal/domain/skillgap"
)

type ComparisonResult struct {
	Match      skillgap.MatchResult
	Categories []skillgap.CategorySummary
}

type CompareUsecase interface {
	Compare(ctx context.Context, candidate []skillgap.CandidateSkill, required []skillgap.RequiredSkill) ComparisonResult
}

type Compare struct{}

func NewCompareUsecase() *Compare {
	return &Compare{}
}

func (u *Compare) Compare(_ context.Context, candidate []skillgap.CandidateSkill, required []skillgap.RequiredSkill) ComparisonResult {
	return compareSkills(candidate, required)
}

func compareSkills(candidate []skillgap.CandidateSkill, required []skillgap.RequiredSkill) ComparisonResult {
	res := skillgap.Compare(candidate, required)
	return ComparisonResult{Match: res, Categories: res.Categories()}
}
