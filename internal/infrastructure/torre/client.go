package torre

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"skill-gap/internal/logger"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("torre: record not found")

type Client interface {
	FetchProfile(ctx context.Context, username string) (Profile, error)
	FetchJob(ctx context.Context, jobID string) (Job, error)
	SearchJobs(ctx context.Context, term string, limit int) (JobSearchResponse, error)
}

type Profile struct {
	Person    Person            `json:"person"`
	Strengths []ProfileStrength `json:"strengths"`
}

type Person struct {
	Name                 string `json:"name"`
	ProfessionalHeadline string `json:"professionalHeadline,omitempty"`
	Picture              string `json:"picture,omitempty"`
}

type ProfileStrength struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Proficiency string  `json:"proficiency"`
	Weight      float64 `json:"weight"`
}

type Job struct {
	ID            string         `json:"id"`
	Objective     string         `json:"objective"`
	Organizations []Organization `json:"organizations"`
	Strengths     []JobStrength  `json:"strengths"`
	Remote        bool           `json:"remote"`
	Locations     []string       `json:"locations"`
}

type Organization struct {
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

type Compensation struct {
	Currency    string  `json:"currency"`
	MinAmount   float64 `json:"minAmount,omitempty"`
	MaxAmount   float64 `json:"maxAmount,omitempty"`
	Periodicity string  `json:"periodicity,omitempty"`
}

type JobSearchResult struct {
	ID            string         `json:"id"`
	Objective     string         `json:"objective"`
	Organizations []Organization `json:"organizations"`
	Remote        bool           `json:"remote"`
	Compensation  *Compensation  `json:"compensation,omitempty"`
	Locations     []string       `json:"locations"`
}

type JobSearchResponse struct {
	Results []JobSearchResult `json:"results"`
	Total   int               `json:"total"`
}

type JobStrength struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Experience string `json:"experience,omitempty"`
}

// searchQuery is the opportunity search filter: a role/skill text match open
// to every experience level.
type searchQuery struct {
	SkillRole searchSkillRole `json:"skill/role"`
}

type searchSkillRole struct {
	Text       string `json:"text"`
	Experience string `json:"experience"`
}

type httpClient struct {
	baseURL   string
	searchURL string
	client    *http.Client
	logger    *zap.Logger
}

// NewClient builds a client for the bios/opportunities API at baseURL and the
// opportunity search API at searchURL.
func NewClient(baseURL, searchURL string, timeout time.Duration, log *zap.Logger) Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL:   strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		searchURL: strings.TrimRight(strings.TrimSpace(searchURL), "/"),
		client:    &http.Client{Timeout: timeout},
		logger:    logger.OrNop(log),
	}
}

func (c *httpClient) FetchProfile(ctx context.Context, username string) (Profile, error) {
	var out Profile
	if err := c.getJSON(ctx, "/genome/bios/"+url.PathEscape(strings.TrimSpace(username)), &out); err != nil {
		return Profile{}, err
	}
	return out, nil
}

func (c *httpClient) FetchJob(ctx context.Context, jobID string) (Job, error) {
	var out Job
	if err := c.getJSON(ctx, "/suite/opportunities/"+url.PathEscape(strings.TrimSpace(jobID)), &out); err != nil {
		return Job{}, err
	}
	return out, nil
}

func (c *httpClient) SearchJobs(ctx context.Context, term string, limit int) (JobSearchResponse, error) {
	body, err := json.Marshal(searchQuery{SkillRole: searchSkillRole{
		Text:       strings.TrimSpace(term),
		Experience: "potential-to-develop",
	}})
	if err != nil {
		return JobSearchResponse{}, err
	}

	q := url.Values{}
	q.Set("size", strconv.Itoa(limit))
	q.Set("lang", "en")
	endpoint := c.searchURL + "/opportunities/_search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return JobSearchResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out JobSearchResponse
	if err := c.do(req, "/opportunities/_search", &out); err != nil {
		return JobSearchResponse{}, err
	}
	if out.Results == nil {
		out.Results = []JobSearchResult{}
	}
	return out, nil
}

func (c *httpClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *httpClient) do(req *http.Request, path string, out any) error {
	endpoint := req.URL.String()
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("torre request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		c.logger.Warn("torre request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", bodyStr),
		)
		return fmt.Errorf("torre request %s: status=%d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("torre decode %s: %w", path, err)
	}
	return nil
}

var _ Client = (*httpClient)(nil)
