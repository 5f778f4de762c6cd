package usecase

import (
	"context"
	"fmt"
	"time"

	"skill-gap/internal/infrastructure/torre"
	"skill-gap/internal/logger"
	"skill-gap/internal/search"

	"go.uber.org/zap"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 20
)

type JobSearch struct {
	Query   string
	Results []torre.JobSearchResult
	Total   int
}

type JobSearchUsecase interface {
	Search(ctx context.Context, term string, limit int) (JobSearch, error)
}

type JobSearchService struct {
	torre   torre.Client
	records recordStore
	logger  *zap.Logger
}

func NewJobSearchUsecase(client torre.Client, cache RecordCache, ttl time.Duration, log *zap.Logger) *JobSearchService {
	log = logger.OrNop(log)
	return &JobSearchService{torre: client, records: newRecordStore(cache, ttl, log), logger: log}
}

// Search looks up open roles for a free-text term. A multi-word term that
// finds nothing is retried with its first word.
func (u *JobSearchService) Search(ctx context.Context, term string, limit int) (JobSearch, error) {
	q := search.ProcessQuery(term)
	if q.Normalized == "" {
		return JobSearch{}, fmt.Errorf("%w: search term is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	key := SearchCacheKey(q.Normalized, limit)
	var cached JobSearch
	if u.records.get(ctx, key, &cached) {
		return cached, nil
	}

	out, err := u.search(ctx, q.Normalized, limit)
	if err != nil {
		return JobSearch{}, err
	}
	if len(out.Results) == 0 && q.Fallback != "" {
		u.logger.Debug("job search fallback", zap.String("query", q.Normalized), zap.String("fallback", q.Fallback))
		out, err = u.search(ctx, q.Fallback, limit)
		if err != nil {
			return JobSearch{}, err
		}
	}

	u.records.set(ctx, key, out)
	return out, nil
}

func (u *JobSearchService) search(ctx context.Context, term string, limit int) (JobSearch, error) {
	res, err := u.torre.SearchJobs(ctx, term, limit)
	if err != nil {
		u.logger.Warn("search jobs", zap.String("query", term), zap.Error(err))
		return JobSearch{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	results := res.Results
	if results == nil {
		results = []torre.JobSearchResult{}
	}
	return JobSearch{Query: term, Results: results, Total: res.Total}, nil
}
