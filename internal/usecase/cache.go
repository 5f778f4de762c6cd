package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"skill-gap/internal/logger"

	"go.uber.org/zap"
)

// RecordTTL bounds how long retrieved profile and job records are reused when
// no TTL is configured.
const RecordTTL = 5 * time.Minute

type RecordCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// recordStore reads and writes records through an optional RecordCache. Cache
// failures are logged and treated as misses.
type recordStore struct {
	cache  RecordCache
	ttl    time.Duration
	logger *zap.Logger
}

func newRecordStore(cache RecordCache, ttl time.Duration, log *zap.Logger) recordStore {
	if ttl <= 0 {
		ttl = RecordTTL
	}
	return recordStore{cache: cache, ttl: ttl, logger: logger.OrNop(log)}
}

func (s recordStore) get(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.GetJSON(ctx, key, out)
	if err != nil {
		s.logger.Debug("cache read", zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}

func (s recordStore) set(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.ttl); err != nil {
		s.logger.Debug("cache write", zap.String("key", key), zap.Error(err))
	}
}

func normalizeKeyValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func ProfileCacheKey(username string) string {
	return "torre:bio:" + normalizeKeyValue(username)
}

func JobCacheKey(jobID string) string {
	return "torre:job:" + strings.TrimSpace(jobID)
}

func SearchCacheKey(normalizedTerm string, limit int) string {
	return "torre:search:" + strconv.Itoa(limit) + ":" + normalizeKeyValue(normalizedTerm)
}
