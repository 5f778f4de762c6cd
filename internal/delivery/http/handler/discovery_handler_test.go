package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/infrastructure/torre"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource answers every lookup; "ghost" is an unknown profile.
type stubSource struct {
	searchErr error
}

func (stubSource) FetchProfile(_ context.Context, username string) (torre.Profile, error) {
	if username == "ghost" {
		return torre.Profile{}, torre.ErrNotFound
	}
	return torre.Profile{
		Person:    torre.Person{Name: "Jane Doe", ProfessionalHeadline: "Engineer"},
		Strengths: []torre.ProfileStrength{{Name: "Go", Proficiency: "expert", Weight: 12}},
	}, nil
}

func (stubSource) FetchJob(_ context.Context, id string) (torre.Job, error) {
	return torre.Job{ID: id}, nil
}

func (s stubSource) SearchJobs(_ context.Context, term string, limit int) (torre.JobSearchResponse, error) {
	if s.searchErr != nil {
		return torre.JobSearchResponse{}, s.searchErr
	}
	return torre.JobSearchResponse{
		Results: []torre.JobSearchResult{{
			ID:            "job1",
			Objective:     term,
			Organizations: []torre.Organization{{Name: "Acme"}},
			Compensation:  &torre.Compensation{Currency: "USD$", MinAmount: 3000},
		}},
		Total: limit,
	}, nil
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newDiscoveryApp(src torre.Client, cache Pinger) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewHealthHandler(cache).RegisterRoutes(app)
	api := app.Group("/api/v1")
	NewProfileHandler(usecase.NewProfileUsecase(src, nil, 0, nil)).RegisterRoutes(api)
	NewJobSearchHandler(usecase.NewJobSearchUsecase(src, nil, 0, nil)).RegisterRoutes(api)
	return app
}

func TestProfile_Get(t *testing.T) {
	status, env := do(t, newDiscoveryApp(stubSource{}, nil), http.MethodGet, "/api/v1/profiles/jane", nil)
	require.Equal(t, http.StatusOK, status)

	var out struct {
		Username string `json:"username"`
		Person   struct {
			Name string `json:"name"`
		} `json:"person"`
		Strengths []map[string]any `json:"strengths"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "jane", out.Username)
	assert.Equal(t, "Jane Doe", out.Person.Name)
	require.Len(t, out.Strengths, 1)
	assert.Equal(t, "expert", out.Strengths[0]["proficiency"])

	status, env = do(t, newDiscoveryApp(stubSource{}, nil), http.MethodGet, "/api/v1/profiles/ghost", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Profile not found", env.Message)
}

func TestJobSearch_Get(t *testing.T) {
	status, env := do(t, newDiscoveryApp(stubSource{}, nil), http.MethodGet, "/api/v1/jobs/search?q=Go%20Developer", nil)
	require.Equal(t, http.StatusOK, status)

	var out struct {
		Query   string `json:"query"`
		Total   int    `json:"total"`
		Results []struct {
			ID            string   `json:"id"`
			Objective     string   `json:"objective"`
			Organizations []string `json:"organizations"`
			Locations     []string `json:"locations"`
			Compensation  *struct {
				MinAmount float64 `json:"minAmount"`
			} `json:"compensation"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "go developer", out.Query)
	assert.Equal(t, usecase.DefaultSearchLimit, out.Total)
	require.Len(t, out.Results, 1)
	assert.Equal(t, []string{"Acme"}, out.Results[0].Organizations)
	assert.NotNil(t, out.Results[0].Locations)
	require.NotNil(t, out.Results[0].Compensation)
	assert.Equal(t, 3000.0, out.Results[0].Compensation.MinAmount)
}

func TestJobSearch_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    stubSource
		path   string
		status int
	}{
		{"blank term", stubSource{}, "/api/v1/jobs/search?q=%20%20", http.StatusBadRequest},
		{"missing term", stubSource{}, "/api/v1/jobs/search", http.StatusBadRequest},
		{"bad limit", stubSource{}, "/api/v1/jobs/search?q=go&limit=ten", http.StatusBadRequest},
		{"upstream", stubSource{searchErr: errors.New("timeout")}, "/api/v1/jobs/search?q=go", http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, newDiscoveryApp(tt.src, nil), http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.status, env.Status)
		})
	}
}

func TestHealth_ReportsCache(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	status, env := do(t, newDiscoveryApp(stubSource{}, up), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"up","cache":"up"}`, string(env.Data))

	status, env = do(t, newDiscoveryApp(stubSource{}, down), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"up","cache":"down"}`, string(env.Data))
}
