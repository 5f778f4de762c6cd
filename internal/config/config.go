package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Torre    TorreConfig
	Log      LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	MigrationsDir string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

// Enabled reports whether enough settings are present to open a connection.
func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != "" && c.DBPort != "" && c.DBName != "" && c.DBUser != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type TorreConfig struct {
	BaseURL   string
	SearchURL string
	Timeout   time.Duration
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

const (
	defaultTorreBaseURL   = "https://torre.bio/api"
	defaultTorreSearchURL = "https://search.torre.co"
	defaultTorreTimeout   = 10 * time.Second
	defaultCacheTTL       = 5 * time.Minute
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBSSLMode:      stringOrDefault(opt("DB_SSL_MODE"), "disable"),
		MigrationsDir:  opt("DB_MIGRATIONS_DIR"),
		ConnectTimeout: secondsOrDefault(opt("DB_CONNECT_TIMEOUT_SECONDS"), 5*time.Second),
		PoolMaxConns:   int32(intOrDefault(opt("DB_POOL_MAX_CONNS"), 0)),
	}

	cfg.Redis = RedisConfig{
		Host:     stringOrDefault(opt("REDIS_HOST"), "localhost"),
		Port:     stringOrDefault(opt("REDIS_PORT"), "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      secondsOrDefault(opt("REDIS_TTL"), defaultCacheTTL),
	}

	cfg.Torre = TorreConfig{
		BaseURL:   strings.TrimRight(stringOrDefault(opt("TORRE_BASE_URL"), defaultTorreBaseURL), "/"),
		SearchURL: strings.TrimRight(stringOrDefault(opt("TORRE_SEARCH_URL"), defaultTorreSearchURL), "/"),
		Timeout:   secondsOrDefault(opt("TORRE_TIMEOUT_SECONDS"), defaultTorreTimeout),
	}

	cfg.Log = LogConfig{
		JSON:  strings.EqualFold(opt("LOG_FORMAT"), "json"),
		Debug: strings.EqualFold(opt("LOG_LEVEL"), "debug"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func stringOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func secondsOrDefault(raw string, def time.Duration) time.Duration {
	v := intOrDefault(raw, 0)
	if v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
