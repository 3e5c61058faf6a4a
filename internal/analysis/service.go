package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	apperrors "github.com/cdobratz/nfl-sentiment-analyzer/internal/errors"
)

// Service runs the full per-event pipeline: fetch posts, analyze in batches,
// rank, aggregate, cache. Collaborators arrive through the constructor; there
// is no hidden global state.
type Service struct {
	posts     domain.PostSource
	events    domain.EventSource
	scorer    domain.Scorer
	extractor Extractor
	cache     *ResultCache
	batchSize int
	rankLimit int
}

// NewService wires the pipeline service from its collaborators.
func NewService(posts domain.PostSource, events domain.EventSource, scorer domain.Scorer, extractor Extractor, cache *ResultCache, batchSize, rankLimit int) *Service {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	if rankLimit < 1 {
		rankLimit = DefaultRankLimit
	}
	return &Service{
		posts:     posts,
		events:    events,
		scorer:    scorer,
		extractor: extractor,
		cache:     cache,
		batchSize: batchSize,
		rankLimit: rankLimit,
	}
}

// EventAnalysisFor returns the analysis for eventID, served from cache when
// fresh.
func (s *Service) EventAnalysisFor(ctx context.Context, eventID string) (EventAnalysis, error) {
	if strings.TrimSpace(eventID) == "" {
		return EventAnalysis{}, apperrors.ValidationError("event ID is required")
	}
	return s.cache.GetOrCompute(ctx, "event:"+eventID, func(ctx context.Context) (EventAnalysis, error) {
		return s.analyzeEvent(ctx, eventID)
	})
}

// Refresh invalidates the cached analysis for eventID and recomputes it.
func (s *Service) Refresh(ctx context.Context, eventID string) (EventAnalysis, error) {
	if strings.TrimSpace(eventID) == "" {
		return EventAnalysis{}, apperrors.ValidationError("event ID is required")
	}
	if err := s.cache.Invalidate(ctx, "event:"+eventID); err != nil {
		return EventAnalysis{}, apperrors.InternalError("failed to invalidate cached analysis", err).
			WithField("event_id", eventID)
	}
	return s.EventAnalysisFor(ctx, eventID)
}

// analyzeEvent is the uncached pipeline run.
func (s *Service) analyzeEvent(ctx context.Context, eventID string) (EventAnalysis, error) {
	runID := uuid.NewString()
	slog.Info("Starting event analysis", "event_id", eventID, "run_id", runID)

	event, err := s.events.GetEventDetails(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return EventAnalysis{}, apperrors.NotFoundError("event not found").
				WithField("event_id", eventID)
		}
		return EventAnalysis{}, apperrors.ExternalError("failed to load event details", err).
			WithField("event_id", eventID)
	}

	posts, err := s.posts.FetchPosts(ctx, eventID, []string{event.HomeTeam, event.AwayTeam})
	if err != nil {
		return EventAnalysis{}, apperrors.ExternalError("failed to fetch posts", fmt.Errorf("%w: %v", domain.ErrUpstreamFetch, err)).
			WithField("event_id", eventID)
	}

	// No matching posts is a valid empty result, not an error.
	dist := NewDistribution()
	analyzer := NewAnalyzer(s.scorer, s.extractor, dist)
	analyzed := ProcessBatch(ctx, analyzer, posts, s.batchSize)

	result := EventAnalysis{
		EventID:       eventID,
		Event:         *event,
		Ranked:        Rank(analyzed, s.rankLimit),
		Summary:       Aggregate(analyzed),
		Distribution:  dist.Snapshot(),
		HomeSentiment: teamSentiment(analyzed, event.HomeTeam),
		AwaySentiment: teamSentiment(analyzed, event.AwayTeam),
		PostCount:     len(posts),
		AnalyzedAt:    time.Now().UTC(),
	}

	slog.Info("Event analysis complete",
		"event_id", eventID,
		"run_id", runID,
		"posts", len(posts),
		"analyzed", len(analyzed),
		"ranked", len(result.Ranked),
	)
	return result, nil
}

// teamSentiment averages the score of analyzed posts mentioning the team.
func teamSentiment(posts []domain.AnalyzedPost, team string) float64 {
	if team == "" {
		return 0
	}
	var sum float64
	var n int
	needle := strings.ToLower(team)
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Post.Text), needle) {
			sum += p.Sentiment.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// WeeklySummary is the condensed per-event view.
type WeeklySummary struct {
	EventID       string    `json:"event_id"`
	SentimentMean float64   `json:"sentiment_score"`
	Confidence    float64   `json:"confidence"`
	PostCount     int       `json:"tweet_count"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WeeklySummaryFor condenses the event analysis to headline numbers.
func (s *Service) WeeklySummaryFor(ctx context.Context, eventID string) (WeeklySummary, error) {
	ea, err := s.EventAnalysisFor(ctx, eventID)
	if err != nil {
		return WeeklySummary{}, err
	}
	return WeeklySummary{
		EventID:       ea.EventID,
		SentimentMean: ea.Summary.AvgScore,
		Confidence:    ea.Summary.AvgConfidence,
		PostCount:     ea.PostCount,
		UpdatedAt:     ea.AnalyzedAt,
	}, nil
}

// TrendReport describes sentiment shares over an analysis window.
type TrendReport struct {
	EventID        string    `json:"event_id"`
	OverallScore   float64   `json:"overall_sentiment"`
	PositiveShare  float64   `json:"positive_share"`
	NegativeShare  float64   `json:"negative_share"`
	NeutralShare   float64   `json:"neutral_share"`
	ConfidenceMean float64   `json:"confidence_mean"`
	PeriodStart    time.Time `json:"period_start"`
	PeriodEnd      time.Time `json:"period_end"`
	PostCount      int       `json:"tweet_count"`
}

// TrendsFor reports label shares for eventID over the trailing window.
func (s *Service) TrendsFor(ctx context.Context, eventID string, days int) (TrendReport, error) {
	if days < 1 || days > 30 {
		return TrendReport{}, apperrors.ValidationError("days must be between 1 and 30").
			WithField("days", days)
	}

	ea, err := s.EventAnalysisFor(ctx, eventID)
	if err != nil {
		return TrendReport{}, err
	}

	report := TrendReport{
		EventID:        ea.EventID,
		OverallScore:   ea.Summary.AvgScore,
		ConfidenceMean: ea.Summary.AvgConfidence,
		PeriodEnd:      ea.AnalyzedAt,
		PeriodStart:    ea.AnalyzedAt.AddDate(0, 0, -days),
		PostCount:      ea.PostCount,
	}
	if ea.Summary.Total > 0 {
		total := float64(ea.Summary.Total)
		report.PositiveShare = float64(ea.Summary.Positive) / total
		report.NegativeShare = float64(ea.Summary.Negative) / total
		report.NeutralShare = float64(ea.Summary.Neutral) / total
	}
	return report, nil
}
