package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the lint daemon looks for its YAML config.
const DefaultPath = "livectl-lintd.yaml"

const (
	DraftStoreRedis  = "redis"
	DraftStoreMemory = "memory"
)

type Config struct {
	Addr string `yaml:"address"`
	Port string `yaml:"port"`
	Dev  bool   `yaml:"dev"`

	// DraftStore selects where drafts live: "redis" or "memory".
	DraftStore string `yaml:"draft_store"`
	RedisAddr  string `yaml:"redis_address"`
	RedisDB    int    `yaml:"redis_db"`

	DraftTTL time.Duration `yaml:"draft_ttl"`

	RateLimitRPS   float64 `yaml:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst"`

	// BatchConcurrency bounds how many batch items are linted at once.
	BatchConcurrency int `yaml:"batch_concurrency"`
	// MaxConcurrentRequests bounds in-flight requests on the lint routes.
	MaxConcurrentRequests int `yaml:"max_concurrent_requests"`

	StrictEnums bool `yaml:"strict_enums"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:                  "127.0.0.1",
		Port:                  "8088",
		DraftStore:            DraftStoreRedis,
		RedisAddr:             "localhost:6379",
		DraftTTL:              24 * time.Hour,
		RateLimitRPS:          50,
		RateLimitBurst:        100,
		BatchConcurrency:      8,
		MaxConcurrentRequests: 64,
	}
}

// ListenAddr is the host:port the HTTP server binds.
func (c Config) ListenAddr() string { return c.Addr + ":" + c.Port }

// Load reads the YAML file at path over Default and then applies
// LIVECTL_* environment overrides. A missing file is not an error.
// Variables from .env (if present) are loaded first and never override the
// process environment.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	_ = LoadEnv() // .env is optional

	cfg.Addr = GetEnv("LIVECTL_ADDR", cfg.Addr)
	cfg.Port = GetEnv("LIVECTL_PORT", cfg.Port)
	cfg.Dev = GetEnvBool("LIVECTL_DEV", cfg.Dev || os.Getenv("ENV") == "dev")
	cfg.DraftStore = GetEnv("LIVECTL_DRAFT_STORE", cfg.DraftStore)
	cfg.RedisAddr = GetEnv("LIVECTL_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisDB = GetEnvInt("LIVECTL_REDIS_DB", cfg.RedisDB)
	cfg.DraftTTL = GetEnvDuration("LIVECTL_DRAFT_TTL", cfg.DraftTTL)
	cfg.RateLimitRPS = GetEnvFloat("LIVECTL_RATE_LIMIT_RPS", cfg.RateLimitRPS)
	cfg.RateLimitBurst = GetEnvInt("LIVECTL_RATE_LIMIT_BURST", cfg.RateLimitBurst)
	cfg.BatchConcurrency = GetEnvInt("LIVECTL_BATCH_CONCURRENCY", cfg.BatchConcurrency)
	cfg.MaxConcurrentRequests = GetEnvInt("LIVECTL_MAX_CONCURRENT_REQUESTS", cfg.MaxConcurrentRequests)
	cfg.StrictEnums = GetEnvBool("LIVECTL_STRICT_ENUMS", cfg.StrictEnums)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.Port == "":
		return errors.New("port is required")
	case c.DraftStore != DraftStoreRedis && c.DraftStore != DraftStoreMemory:
		return fmt.Errorf("draft_store must be %q or %q, got %q", DraftStoreRedis, DraftStoreMemory, c.DraftStore)
	case c.DraftStore == DraftStoreRedis && c.RedisAddr == "":
		return errors.New("redis_address is required when draft_store is redis")
	case c.DraftTTL <= 0:
		return fmt.Errorf("draft_ttl must be positive, got %s", c.DraftTTL)
	case c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0:
		return fmt.Errorf("rate limit must be positive, got rps=%v burst=%d", c.RateLimitRPS, c.RateLimitBurst)
	case c.BatchConcurrency <= 0:
		return fmt.Errorf("batch_concurrency must be positive, got %d", c.BatchConcurrency)
	case c.MaxConcurrentRequests <= 0:
		return fmt.Errorf("max_concurrent_requests must be positive, got %d", c.MaxConcurrentRequests)
	}
	return nil
}

// LoadEnv reads .env files into the process environment. With no paths,
// ".env" is used.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	return godotenv.Load(paths...)
}

// GetEnv returns the value of the environment variable named by key, or fallback
// if the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// GetEnvInt returns the integer value of key, or fallback if unset or invalid.
func GetEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}

func GetEnvFloat(key string, fallback float64) float64 {
	if s := os.Getenv(key); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return fallback
}

func GetEnvBool(key string, fallback bool) bool {
	if s := os.Getenv(key); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return fallback
}

// GetEnvDuration parses values such as "90s" or "12h".
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return fallback
}
