package analysis

import (
	"context"
	"time"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
)

// EventAnalysis is the cached result of one full pipeline run for an event.
type EventAnalysis struct {
	EventID       string                    `json:"event_id"`
	Event         domain.Event              `json:"event"`
	Ranked        []domain.AnalyzedPost     `json:"ranked"`
	Summary       Summary                   `json:"summary"`
	Distribution  domain.DistributionCounts `json:"distribution"`
	HomeSentiment float64                   `json:"home_sentiment"`
	AwaySentiment float64                   `json:"away_sentiment"`
	PostCount     int                       `json:"post_count"`
	AnalyzedAt    time.Time                 `json:"analyzed_at"`
}

// ResultStore abstracts analysis result storage behind the cache facade.
// In-memory implementation is used for single-instance mode; the Redis
// implementation shares results across instances.
type ResultStore interface {
	Get(ctx context.Context, key string) (*EventAnalysis, bool, error)
	Set(ctx context.Context, key string, value EventAnalysis, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
