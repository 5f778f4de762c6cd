package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-gap/internal/infrastructure/torre"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Preview_ReadsThroughCache(t *testing.T) {
	src := newFakeTorre()
	cache := newMemCache()
	uc := NewProfileUsecase(src, cache, 0, nil)
	ctx := context.Background()

	p, err := uc.Preview(ctx, " jane ")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Person.Name)
	assert.Len(t, p.Strengths, 3)

	_, err = uc.Preview(ctx, "jane")
	require.NoError(t, err)
	assert.Equal(t, 1, src.profileFetches)
	assert.Equal(t, RecordTTL, cache.ttls[ProfileCacheKey("jane")])
}

func TestProfile_Preview_SeesProfileCachedByAnalysis(t *testing.T) {
	src := newFakeTorre()
	cache := newMemCache()

	_, err := NewAnalysisUsecase(src, cache, nil, 0, nil).Analyze(context.Background(), "jane", []string{"backend"})
	require.NoError(t, err)

	p, err := NewProfileUsecase(src, cache, 0, nil).Preview(context.Background(), "Jane")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Person.Name)
	assert.Equal(t, 1, src.profileFetches)
}

func TestProfile_Preview_Errors(t *testing.T) {
	uc := NewProfileUsecase(newFakeTorre(), nil, 0, nil)
	ctx := context.Background()

	_, err := uc.Preview(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Preview(ctx, "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

type unreachableProfiles struct{ *fakeTorre }

func (unreachableProfiles) FetchProfile(context.Context, string) (torre.Profile, error) {
	return torre.Profile{}, errors.New("connection refused")
}

func TestProfile_Preview_Upstream(t *testing.T) {
	uc := NewProfileUsecase(unreachableProfiles{newFakeTorre()}, newMemCache(), 0, nil)

	_, err := uc.Preview(context.Background(), "jane")
	assert.ErrorIs(t, err, ErrUpstream)
}
