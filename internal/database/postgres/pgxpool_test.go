package postgres

import (
	"context"
	"testing"

	"skill-gap/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		DBHost:     " db ",
		DBPort:     "5432",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "skillgap",
		DBSSLMode:  "disable",
	})
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=skillgap sslmode=disable", dsn)
}

func TestPool_NilSafe(t *testing.T) {
	var p *Pool
	ctx := context.Background()

	assert.Error(t, p.Ping(ctx))
	assert.NoError(t, p.Close())
	_, err := p.Exec(ctx, "SELECT 1")
	assert.Error(t, err)
	assert.Error(t, p.QueryRow(ctx, "SELECT 1").Scan())
	assert.Nil(t, p.SQLDB())
}
