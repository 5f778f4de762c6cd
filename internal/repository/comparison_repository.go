package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/skillgap"

	"github.com/google/uuid"
)

var ErrHistoryDisabled = errors.New("comparison history disabled")

type Comparison struct {
	ID           uuid.UUID
	Username     string
	JobID        string
	JobObjective string
	Result       skillgap.MatchResult
	Categories   []skillgap.CategorySummary
	CreatedAt    time.Time
}

type ComparisonRepository interface {
	Save(ctx context.Context, c Comparison) (Comparison, error)
	ListByUsername(ctx context.Context, username string, limit int) ([]Comparison, error)
}

type PostgresComparisonRepository struct {
	db database.DB
}

func NewPostgresComparisonRepository(db database.DB) *PostgresComparisonRepository {
	return &PostgresComparisonRepository{db: db}
}

func (r *PostgresComparisonRepository) Save(ctx context.Context, c Comparison) (Comparison, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	result, err := json.Marshal(c.Result)
	if err != nil {
		return Comparison{}, err
	}
	categories, err := json.Marshal(c.Categories)
	if err != nil {
		return Comparison{}, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO skill_comparisons (id, username, job_id, job_objective, simple_score, weighted_score, result, categories, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9)`,
		c.ID, strings.TrimSpace(c.Username), c.JobID, c.JobObjective,
		c.Result.SimpleScore, c.Result.WeightedScore,
		string(result), string(categories), c.CreatedAt,
	)
	if err != nil {
		return Comparison{}, err
	}
	return c, nil
}

func (r *PostgresComparisonRepository) ListByUsername(ctx context.Context, username string, limit int) ([]Comparison, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, username, job_id, job_objective, result, categories, created_at
		 FROM skill_comparisons
		 WHERE lower(username) = lower($1)
		 ORDER BY created_at DESC
		 LIMIT $2`,
		strings.TrimSpace(username), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Comparison, 0)
	for rows.Next() {
		var c Comparison
		var result, categories []byte
		if err := rows.Scan(&c.ID, &c.Username, &c.JobID, &c.JobObjective, &result, &categories, &c.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(result, &c.Result); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(categories, &c.Categories); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// NoopComparisonRepository is used when no database is configured.
type NoopComparisonRepository struct{}

func (NoopComparisonRepository) Save(_ context.Context, c Comparison) (Comparison, error) {
	return c, ErrHistoryDisabled
}

func (NoopComparisonRepository) ListByUsername(context.Context, string, int) ([]Comparison, error) {
	return nil, ErrHistoryDisabled
}
