package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/skillgap"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	execQuery string
	execArgs  []any
	rows      *fakeRows
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	f.execQuery = q
	f.execArgs = args
	return 1, nil
}
func (f *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return f.rows, nil
}
func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (f *fakeDB) SQLDB() *sql.DB                                      { return nil }

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	r.i++
	return r.i <= len(r.data)
}
func (r *fakeRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	*(dest[0].(*uuid.UUID)) = row[0].(uuid.UUID)
	*(dest[1].(*string)) = row[1].(string)
	*(dest[2].(*string)) = row[2].(string)
	*(dest[3].(*string)) = row[3].(string)
	*(dest[4].(*[]byte)) = row[4].([]byte)
	*(dest[5].(*[]byte)) = row[5].([]byte)
	*(dest[6].(*time.Time)) = row[6].(time.Time)
	return nil
}

func TestPostgresComparisonRepository_Save(t *testing.T) {
	db := &fakeDB{}
	repo := NewPostgresComparisonRepository(db)

	res := skillgap.Compare(
		[]skillgap.CandidateSkill{{Name: "Go", Proficiency: "expert", Weight: 10}},
		[]skillgap.RequiredSkill{{Name: "Go", Experience: "1-3-years"}, {Name: "Rust"}},
	)
	saved, err := repo.Save(context.Background(), Comparison{
		Username:   " jane ",
		JobID:      "job1",
		Result:     res,
		Categories: res.Categories(),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Contains(t, db.execQuery, "INSERT INTO skill_comparisons")
	require.Len(t, db.execArgs, 9)
	assert.Equal(t, "jane", db.execArgs[1])
	assert.Equal(t, res.SimpleScore, db.execArgs[4])
	assert.Equal(t, res.WeightedScore, db.execArgs[5])

	var stored skillgap.MatchResult
	require.NoError(t, json.Unmarshal([]byte(db.execArgs[6].(string)), &stored))
	assert.Equal(t, res, stored)
}

func TestPostgresComparisonRepository_ListByUsername(t *testing.T) {
	res := skillgap.Compare(nil, []skillgap.RequiredSkill{{Name: "Go"}})
	result, _ := json.Marshal(res)
	categories, _ := json.Marshal(res.Categories())
	id := uuid.New()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	db := &fakeDB{rows: &fakeRows{data: [][]any{{id, "jane", "job1", "Backend", result, categories, at}}}}
	repo := NewPostgresComparisonRepository(db)

	out, err := repo.ListByUsername(context.Background(), "Jane", 20)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, id, out[0].ID)
	assert.Equal(t, res, out[0].Result)
	assert.Len(t, out[0].Categories, len(skillgap.DefaultCategories))
	assert.Equal(t, at, out[0].CreatedAt)
}

func TestNoopComparisonRepository(t *testing.T) {
	var repo ComparisonRepository = NoopComparisonRepository{}
	_, err := repo.Save(context.Background(), Comparison{})
	assert.True(t, errors.Is(err, ErrHistoryDisabled))
	_, err = repo.ListByUsername(context.Background(), "jane", 10)
	assert.True(t, errors.Is(err, ErrHistoryDisabled))
}
