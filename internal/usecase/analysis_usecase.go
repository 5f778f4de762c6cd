package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"skill-gap/internal/domain/skillgap"
	"skill-gap/internal/infrastructure/torre"
	"skill-gap/internal/logger"
	"skill-gap/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	MaxJobsPerAnalysis  = 10
	defaultHistoryLimit = 20
	maxHistoryLimit     = 50
)

type JobComparison struct {
	Job        torre.Job
	Match      skillgap.MatchResult
	Categories []skillgap.CategorySummary
}

type Analysis struct {
	Username    string
	Person      torre.Person
	Comparisons []JobComparison
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, username string, jobIDs []string) (Analysis, error)
	History(ctx context.Context, username string, limit int) ([]repository.Comparison, error)
}

type AnalysisService struct {
	torre   torre.Client
	records recordStore
	history repository.ComparisonRepository
	logger  *zap.Logger
}

// NewAnalysisUsecase caches retrieved records for ttl, or RecordTTL when ttl
// is not positive.
func NewAnalysisUsecase(client torre.Client, cache RecordCache, history repository.ComparisonRepository, ttl time.Duration, log *zap.Logger) *AnalysisService {
	if history == nil {
		history = repository.NoopComparisonRepository{}
	}
	log = logger.OrNop(log)
	return &AnalysisService{
		torre:   client,
		records: newRecordStore(cache, ttl, log),
		history: history,
		logger:  log,
	}
}

// Analyze fetches the profile and every job concurrently and compares them once
// all records have resolved. Comparisons are ordered by weighted score, best first.
func (u *AnalysisService) Analyze(ctx context.Context, username string, jobIDs []string) (Analysis, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Analysis{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	ids := uniqueIDs(jobIDs)
	if len(ids) == 0 {
		return Analysis{}, fmt.Errorf("%w: at least one job is required", ErrInvalidInput)
	}
	if len(ids) > MaxJobsPerAnalysis {
		return Analysis{}, fmt.Errorf("%w: at most %d jobs per analysis", ErrInvalidInput, MaxJobsPerAnalysis)
	}

	var profile torre.Profile
	jobs := make([]torre.Job, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := u.fetchProfile(gctx, username)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	for i, id := range ids {
		g.Go(func() error {
			j, err := u.fetchJob(gctx, id)
			if err != nil {
				return err
			}
			jobs[i] = j
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Analysis{}, err
	}

	candidate := CandidateSkills(profile)
	out := Analysis{
		Username:    username,
		Person:      profile.Person,
		Comparisons: make([]JobComparison, 0, len(jobs)),
	}
	for _, j := range jobs {
		cr := compareSkills(candidate, RequiredSkills(j))
		out.Comparisons = append(out.Comparisons, JobComparison{Job: j, Match: cr.Match, Categories: cr.Categories})
	}

	sort.SliceStable(out.Comparisons, func(i, j int) bool {
		return out.Comparisons[i].Match.WeightedScore > out.Comparisons[j].Match.WeightedScore
	})

	u.record(ctx, username, out.Comparisons)
	return out, nil
}

func (u *AnalysisService) History(ctx context.Context, username string, limit int) ([]repository.Comparison, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	items, err := u.history.ListByUsername(ctx, username, limit)
	if err != nil {
		if errors.Is(err, repository.ErrHistoryDisabled) {
			return nil, ErrHistoryUnavailable
		}
		u.logger.Error("list comparison history", zap.String("username", username), zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

// fetchProfile always goes to the source so an analysis sees the latest
// skills; the fresh copy still refreshes the cache for other readers.
func (u *AnalysisService) fetchProfile(ctx context.Context, username string) (torre.Profile, error) {
	p, err := u.torre.FetchProfile(ctx, username)
	if err != nil {
		if errors.Is(err, torre.ErrNotFound) {
			return torre.Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, username)
		}
		u.logger.Warn("fetch profile", zap.String("username", username), zap.Error(err))
		return torre.Profile{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	u.records.set(ctx, ProfileCacheKey(username), p)
	return p, nil
}

func (u *AnalysisService) fetchJob(ctx context.Context, id string) (torre.Job, error) {
	key := JobCacheKey(id)
	var cached torre.Job
	if u.records.get(ctx, key, &cached) {
		return cached, nil
	}

	j, err := u.torre.FetchJob(ctx, id)
	if err != nil {
		if errors.Is(err, torre.ErrNotFound) {
			return torre.Job{}, fmt.Errorf("%w: %q", ErrJobNotFound, id)
		}
		u.logger.Warn("fetch job", zap.String("job_id", id), zap.Error(err))
		return torre.Job{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if j.ID == "" {
		j.ID = id
	}
	u.records.set(ctx, key, j)
	return j, nil
}

func (u *AnalysisService) record(ctx context.Context, username string, comparisons []JobComparison) {
	for _, c := range comparisons {
		_, err := u.history.Save(ctx, repository.Comparison{
			Username:     username,
			JobID:        c.Job.ID,
			JobObjective: c.Job.Objective,
			Result:       c.Match,
			Categories:   c.Categories,
		})
		if err == nil {
			continue
		}
		if errors.Is(err, repository.ErrHistoryDisabled) {
			return
		}
		u.logger.Warn("save comparison", zap.String("username", username), zap.String("job_id", c.Job.ID), zap.Error(err))
	}
}

func CandidateSkills(p torre.Profile) []skillgap.CandidateSkill {
	out := make([]skillgap.CandidateSkill, 0, len(p.Strengths))
	for _, s := range p.Strengths {
		out = append(out, skillgap.CandidateSkill{Name: s.Name, Proficiency: s.Proficiency, Weight: s.Weight})
	}
	return out
}

func RequiredSkills(j torre.Job) []skillgap.RequiredSkill {
	out := make([]skillgap.RequiredSkill, 0, len(j.Strengths))
	for _, s := range j.Strengths {
		out = append(out, skillgap.RequiredSkill{Name: s.Name, Experience: s.Experience})
	}
	return out
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
