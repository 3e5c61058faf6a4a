package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/analysis"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/extract"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/platform/config"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/platform/logging"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/redis"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/scoreboard"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/sentiment"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/server"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/twitter"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// setupResultStore picks Redis when configured, in-memory otherwise. The
// returned stop function tears down the eviction timer or the connection.
func setupResultStore(cfg *config.Config, clock clockwork.Clock) (analysis.ResultStore, *goredis.Client, func()) {
	if cfg.RedisURL == "" {
		store := analysis.NewMemoryStore(cfg.CacheTTL, clock)
		stopEviction := store.StartEvictionTimer(1 * time.Minute)
		slog.Info("Using in-memory result store", "ttl", cfg.CacheTTL)
		return store, nil, stopEviction
	}

	client, err := redis.NewClient(context.Background(), cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	slog.Info("Using Redis result store", "ttl", cfg.CacheTTL)
	return analysis.NewRedisStore(client), client, func() { _ = client.Close() }
}

// setupScorer selects the remote ML backend when configured, otherwise the
// built-in lexicon.
func setupScorer(cfg *config.Config) domain.Scorer {
	if cfg.MLServiceURL != "" {
		slog.Info("Using remote sentiment scorer", "url", cfg.MLServiceURL, "model", cfg.MLModelName)
		return sentiment.NewRemoteScorer(cfg.MLServiceURL, cfg.MLModelName, cfg.MLMaxBatch)
	}
	slog.Info("Using lexicon sentiment scorer")
	return sentiment.NewLexiconScorer()
}

func runGracefulShutdown(srv *server.Server, cleanup func()) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		cleanup()
		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	store, redisClient, stopStore := setupResultStore(cfg, clock)

	resultCache := analysis.NewResultCache(store, cfg.CacheTTL)
	scorer := setupScorer(cfg)
	extractor := extract.NewExtractor()

	posts := twitter.NewClient(cfg.TwitterBaseURL, cfg.TwitterBearerToken, cfg.TwitterRateLimit)
	events := scoreboard.NewClient(cfg.ScoreboardBaseURL)

	svc := analysis.NewService(posts, events, scorer, extractor, resultCache, cfg.BatchSize, cfg.RankLimit)

	srv := server.NewServer(cfg, svc, redisHealthChecker(redisClient))

	done := runGracefulShutdown(srv, stopStore)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

// redisHealthChecker avoids handing the server a typed-nil interface when
// running without Redis.
func redisHealthChecker(client *goredis.Client) server.RedisHealthChecker {
	if client == nil {
		return nil
	}
	return client
}
