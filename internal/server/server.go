package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/analysis"
	apperrors "github.com/cdobratz/nfl-sentiment-analyzer/internal/errors"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/platform/config"
)

// SentimentService is the pipeline surface the HTTP handlers need.
type SentimentService interface {
	EventAnalysisFor(ctx context.Context, eventID string) (analysis.EventAnalysis, error)
	WeeklySummaryFor(ctx context.Context, eventID string) (analysis.WeeklySummary, error)
	TrendsFor(ctx context.Context, eventID string, days int) (analysis.TrendReport, error)
	Refresh(ctx context.Context, eventID string) (analysis.EventAnalysis, error)
}

// RedisHealthChecker is the minimal interface for readiness probes.
type RedisHealthChecker interface {
	Ping(ctx context.Context) *goredis.StatusCmd
}

type Server struct {
	echo        *echo.Echo
	config      *config.Config
	service     SentimentService
	redisClient RedisHealthChecker
	startTime   time.Time
}

// NewServer builds the HTTP surface. redisClient may be nil when the service
// runs with the in-memory result store.
func NewServer(cfg *config.Config, service SentimentService, redisClient RedisHealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(correlationMiddleware)
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:        e,
		config:      cfg,
		service:     service,
		redisClient: redisClient,
		startTime:   time.Now(),
	}
	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
