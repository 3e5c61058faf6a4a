package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv string `env:"APP_ENV" default:"development"`
	Port   string `env:"PORT" default:"8080"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// Post source (Twitter/X recent search)
	TwitterBearerToken string `env:"TWITTER_BEARER_TOKEN"`
	TwitterBaseURL     string `env:"TWITTER_BASE_URL" default:"https://api.twitter.com"`
	// Local request cap against the recent-search endpoint, per minute.
	TwitterRateLimit int `env:"TWITTER_RATE_LIMIT" default:"60"`

	// Event metadata source
	ScoreboardBaseURL string `env:"SCOREBOARD_BASE_URL"`

	// Remote sentiment backend; empty selects the built-in lexicon scorer.
	MLServiceURL string `env:"ML_API_URL"`
	MLModelName  string `env:"ML_MODEL_NAME" default:"bertweet-base"`
	MLMaxBatch   int    `env:"ML_MAX_BATCH" default:"16"`

	// Analysis result cache; empty REDIS_URL selects the in-memory store.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" default:"5m"`

	BatchSize int `env:"BATCH_SIZE" default:"10"`
	RankLimit int `env:"RANK_LIMIT" default:"10"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"TWITTER_BEARER_TOKEN": cfg.TwitterBearerToken,
		"SCOREBOARD_BASE_URL":  cfg.ScoreboardBaseURL,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.BatchSize < 1 {
		return fmt.Errorf("BATCH_SIZE must be at least 1, got %d", cfg.BatchSize)
	}
	if cfg.RankLimit < 1 {
		return fmt.Errorf("RANK_LIMIT must be at least 1, got %d", cfg.RankLimit)
	}
	if cfg.MLMaxBatch < 1 {
		return fmt.Errorf("ML_MAX_BATCH must be at least 1, got %d", cfg.MLMaxBatch)
	}
	if cfg.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", cfg.CacheTTL)
	}

	return nil
}
