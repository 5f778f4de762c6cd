package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skill-gap/internal/infrastructure/torre"
	"skill-gap/internal/logger"

	"go.uber.org/zap"
)

type ProfileUsecase interface {
	Preview(ctx context.Context, username string) (torre.Profile, error)
}

type ProfileService struct {
	torre   torre.Client
	records recordStore
	logger  *zap.Logger
}

func NewProfileUsecase(client torre.Client, cache RecordCache, ttl time.Duration, log *zap.Logger) *ProfileService {
	log = logger.OrNop(log)
	return &ProfileService{torre: client, records: newRecordStore(cache, ttl, log), logger: log}
}

// Preview returns the candidate profile, served from the record cache when a
// recent copy exists. Analysis refreshes that copy on every run.
func (u *ProfileService) Preview(ctx context.Context, username string) (torre.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return torre.Profile{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	key := ProfileCacheKey(username)
	var cached torre.Profile
	if u.records.get(ctx, key, &cached) {
		return cached, nil
	}

	p, err := u.torre.FetchProfile(ctx, username)
	if err != nil {
		if errors.Is(err, torre.ErrNotFound) {
			return torre.Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, username)
		}
		u.logger.Warn("fetch profile", zap.String("username", username), zap.Error(err))
		return torre.Profile{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	u.records.set(ctx, key, p)
	return p, nil
}
