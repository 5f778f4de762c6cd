package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"skill-gap/internal/domain/skillgap"
	"skill-gap/internal/infrastructure/torre"
	"skill-gap/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTorre struct {
	mu             sync.Mutex
	profiles       map[string]torre.Profile
	jobs           map[string]torre.Job
	failJobs       map[string]error
	jobFetches     map[string]int
	profileFetches int

	searchResults map[string][]torre.JobSearchResult
	searchErr     error
	searchTerms   []string
	searchLimits  []int
}

func (f *fakeTorre) FetchProfile(_ context.Context, username string) (torre.Profile, error) {
	f.mu.Lock()
	f.profileFetches++
	f.mu.Unlock()

	p, ok := f.profiles[username]
	if !ok {
		return torre.Profile{}, torre.ErrNotFound
	}
	return p, nil
}

func (f *fakeTorre) FetchJob(_ context.Context, id string) (torre.Job, error) {
	f.mu.Lock()
	if f.jobFetches == nil {
		f.jobFetches = map[string]int{}
	}
	f.jobFetches[id]++
	f.mu.Unlock()

	if err, ok := f.failJobs[id]; ok {
		return torre.Job{}, err
	}
	j, ok := f.jobs[id]
	if !ok {
		return torre.Job{}, torre.ErrNotFound
	}
	return j, nil
}

func (f *fakeTorre) SearchJobs(_ context.Context, term string, limit int) (torre.JobSearchResponse, error) {
	f.mu.Lock()
	f.searchTerms = append(f.searchTerms, term)
	f.searchLimits = append(f.searchLimits, limit)
	f.mu.Unlock()

	if f.searchErr != nil {
		return torre.JobSearchResponse{}, f.searchErr
	}
	res := f.searchResults[term]
	return torre.JobSearchResponse{Results: res, Total: len(res)}, nil
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	c.ttls[key] = ttl
	return nil
}

type memHistory struct {
	mu    sync.Mutex
	saved []repository.Comparison
	err   error
}

func (h *memHistory) Save(_ context.Context, c repository.Comparison) (repository.Comparison, error) {
	if h.err != nil {
		return repository.Comparison{}, h.err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.saved = append(h.saved, c)
	return c, nil
}

func (h *memHistory) ListByUsername(_ context.Context, username string, limit int) ([]repository.Comparison, error) {
	if h.err != nil {
		return nil, h.err
	}
	out := make([]repository.Comparison, 0)
	for _, c := range h.saved {
		if c.Username == username && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

func newFakeTorre() *fakeTorre {
	return &fakeTorre{
		profiles: map[string]torre.Profile{
			"jane": {
				Person: torre.Person{Name: "Jane Doe"},
				Strengths: []torre.ProfileStrength{
					{Name: "Go", Proficiency: "expert", Weight: 50},
					{Name: "PostgreSQL", Proficiency: "proficient", Weight: 10},
					{Name: "React", Proficiency: "novice"},
				},
			},
		},
		jobs: map[string]torre.Job{
			"frontend": {ID: "frontend", Objective: "Frontend Engineer", Strengths: []torre.JobStrength{
				{Name: "React", Experience: "3-5-years"},
				{Name: "TypeScript", Experience: "1-3-years"},
			}},
			"backend": {ID: "backend", Objective: "Backend Engineer", Strengths: []torre.JobStrength{
				{Name: "go", Experience: "3-5-years"},
				{Name: "PostgreSQL"},
			}},
		},
	}
}

func TestAnalysis_Analyze_SortsByWeightedScore(t *testing.T) {
	src := newFakeTorre()
	hist := &memHistory{}
	uc := NewAnalysisUsecase(src, newMemCache(), hist, 0, nil)

	out, err := uc.Analyze(context.Background(), "  jane ", []string{"frontend", "backend", "frontend", " "})
	require.NoError(t, err)

	assert.Equal(t, "jane", out.Username)
	assert.Equal(t, "Jane Doe", out.Person.Name)
	require.Len(t, out.Comparisons, 2)
	assert.Equal(t, "backend", out.Comparisons[0].Job.ID)
	assert.Equal(t, 100, out.Comparisons[0].Match.SimpleScore)
	assert.Equal(t, 100, out.Comparisons[0].Match.WeightedScore)
	assert.Equal(t, "frontend", out.Comparisons[1].Job.ID)
	assert.Equal(t, 25, out.Comparisons[1].Match.SimpleScore)
	assert.NotEmpty(t, out.Comparisons[1].Categories)

	assert.Len(t, hist.saved, 2)
	assert.Equal(t, 1, src.jobFetches["frontend"])
}

func TestAnalysis_Analyze_UsesJobCache(t *testing.T) {
	src := newFakeTorre()
	cache := newMemCache()
	uc := NewAnalysisUsecase(src, cache, nil, 0, nil)

	_, err := uc.Analyze(context.Background(), "jane", []string{"backend"})
	require.NoError(t, err)
	_, err = uc.Analyze(context.Background(), "jane", []string{"backend"})
	require.NoError(t, err)

	assert.Equal(t, 1, src.jobFetches["backend"])
	assert.Equal(t, RecordTTL, cache.ttls[JobCacheKey("backend")])
	assert.Contains(t, cache.data, ProfileCacheKey("Jane"))
	// profile is refreshed on every analysis
	assert.Equal(t, 2, src.profileFetches)
}

func TestAnalysis_Analyze_UsesConfiguredTTL(t *testing.T) {
	cache := newMemCache()
	uc := NewAnalysisUsecase(newFakeTorre(), cache, nil, 90*time.Second, nil)

	_, err := uc.Analyze(context.Background(), "jane", []string{"backend"})
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cache.ttls[JobCacheKey("backend")])
	assert.Equal(t, 90*time.Second, cache.ttls[ProfileCacheKey("jane")])
}

func TestAnalysis_Analyze_Errors(t *testing.T) {
	src := newFakeTorre()
	src.failJobs = map[string]error{"flaky": errors.New("connection reset")}
	uc := NewAnalysisUsecase(src, nil, nil, 0, nil)
	ctx := context.Background()

	_, err := uc.Analyze(ctx, " ", []string{"backend"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Analyze(ctx, "jane", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooMany := make([]string, 0, MaxJobsPerAnalysis+1)
	for i := 0; i <= MaxJobsPerAnalysis; i++ {
		tooMany = append(tooMany, string(rune('a'+i)))
	}
	_, err = uc.Analyze(ctx, "jane", tooMany)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Analyze(ctx, "ghost", []string{"backend"})
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = uc.Analyze(ctx, "jane", []string{"backend", "nope"})
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = uc.Analyze(ctx, "jane", []string{"flaky"})
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestAnalysis_Analyze_HistoryFailureDoesNotFail(t *testing.T) {
	uc := NewAnalysisUsecase(newFakeTorre(), nil, &memHistory{err: errors.New("db down")}, 0, nil)

	out, err := uc.Analyze(context.Background(), "jane", []string{"backend"})
	require.NoError(t, err)
	assert.Len(t, out.Comparisons, 1)
}

func TestAnalysis_History(t *testing.T) {
	hist := &memHistory{}
	for i := 0; i < 60; i++ {
		hist.saved = append(hist.saved, repository.Comparison{Username: "jane", JobID: "j"})
	}
	uc := NewAnalysisUsecase(newFakeTorre(), nil, hist, 0, nil)
	ctx := context.Background()

	items, err := uc.History(ctx, "jane", 0)
	require.NoError(t, err)
	assert.Len(t, items, defaultHistoryLimit)

	items, err = uc.History(ctx, "jane", 500)
	require.NoError(t, err)
	assert.Len(t, items, maxHistoryLimit)

	_, err = uc.History(ctx, "", 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewAnalysisUsecase(newFakeTorre(), nil, nil, 0, nil).History(ctx, "jane", 10)
	assert.ErrorIs(t, err, ErrHistoryUnavailable)

	_, err = NewAnalysisUsecase(newFakeTorre(), nil, &memHistory{err: errors.New("boom")}, 0, nil).History(ctx, "jane", 10)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSkillMapping(t *testing.T) {
	c := CandidateSkills(torre.Profile{Strengths: []torre.ProfileStrength{{Name: "Go", Proficiency: "master", Weight: 7}}})
	assert.Equal(t, []skillgap.CandidateSkill{{Name: "Go", Proficiency: "master", Weight: 7}}, c)

	r := RequiredSkills(torre.Job{Strengths: []torre.JobStrength{{Name: "Go"}, {Name: "SQL", Experience: "1-3-years"}}})
	assert.Equal(t, []skillgap.RequiredSkill{{Name: "Go"}, {Name: "SQL", Experience: "1-3-years"}}, r)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "torre:bio:jane doe", ProfileCacheKey("  Jane   Doe "))
	assert.Equal(t, "torre:job:AbC", JobCacheKey(" AbC "))
	assert.Equal(t, "torre:search:10:go developer", SearchCacheKey("Go  developer", 10))
}
