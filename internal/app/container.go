package app

import (
	"context"
	"io/fs"
	"os"
	"strings"
	"time"

	"skill-gap/internal/config"
	"skill-gap/internal/database"
	"skill-gap/internal/database/migration"
	dbpostgres "skill-gap/internal/database/postgres"
	"skill-gap/internal/infrastructure/cache"
	"skill-gap/internal/infrastructure/torre"
	"skill-gap/internal/logger"
	"skill-gap/internal/repository"
	"skill-gap/internal/usecase"
	"skill-gap/migrations"

	"go.uber.org/zap"
)

// Container owns the long-lived collaborators behind the HTTP handlers.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis

	Compare   usecase.CompareUsecase
	Analysis  usecase.AnalysisUsecase
	Profile   usecase.ProfileUsecase
	JobSearch usecase.JobSearchUsecase
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)
	c := &Container{Config: cfg, Logger: log}

	var history repository.ComparisonRepository = repository.NoopComparisonRepository{}
	if cfg.Database.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := (migration.Runner{FS: migrationSource(cfg.Database), Logger: log}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, err
		}
		c.DB = db
		history = repository.NewPostgresComparisonRepository(db)
	} else {
		log.Info("database not configured, comparison history disabled")
	}

	c.Cache = cache.NewRedis(cfg.Redis, log)
	client := torre.NewClient(cfg.Torre.BaseURL, cfg.Torre.SearchURL, cfg.Torre.Timeout, log)

	c.Compare = usecase.NewCompareUsecase()
	c.Analysis = usecase.NewAnalysisUsecase(client, c.Cache, history, cfg.Redis.TTL, log)
	c.Profile = usecase.NewProfileUsecase(client, c.Cache, cfg.Redis.TTL, log)
	c.JobSearch = usecase.NewJobSearchUsecase(client, c.Cache, cfg.Redis.TTL, log)
	return c, nil
}

// migrationSource prefers an on-disk migrations directory over the schema
// compiled into the binary.
func migrationSource(cfg config.DatabaseConfig) fs.FS {
	if dir := strings.TrimSpace(cfg.MigrationsDir); dir != "" {
		return os.DirFS(dir)
	}
	return migrations.FS
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			firstErr = err
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
