package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/metrics"
)

// Engagement formula weights. Retweets and quotes spread a post further than
// likes, so they count more.
const (
	retweetWeight = 2.0
	replyWeight   = 1.5
	likeWeight    = 1.0
	quoteWeight   = 1.5
)

// Extractor is the subset of keyword/entity extraction the analyzer needs.
type Extractor interface {
	Extract(text string) ([]domain.KeywordEntry, []domain.Entity, error)
}

// Analyzer runs the per-post pipeline: sentiment scoring and extraction in
// parallel, then engagement, reliability, and strength derivation. The
// distribution aggregator is supplied by the caller and shared across one
// batch invocation.
type Analyzer struct {
	scorer    domain.Scorer
	extractor Extractor
	dist      *Distribution
}

// NewAnalyzer wires an analyzer from its collaborators.
func NewAnalyzer(scorer domain.Scorer, extractor Extractor, dist *Distribution) *Analyzer {
	return &Analyzer{
		scorer:    scorer,
		extractor: extractor,
		dist:      dist,
	}
}

type scoreOutcome struct {
	result domain.SentimentResult
	err    error
}

// Analyze produces an AnalyzedPost for post. A scoring failure fails the
// post; an extraction failure degrades to empty keyword/entity lists.
func (a *Analyzer) Analyze(ctx context.Context, post domain.Post) (domain.AnalyzedPost, error) {
	if strings.TrimSpace(post.ID) == "" {
		return domain.AnalyzedPost{}, fmt.Errorf("%w: missing post ID", domain.ErrInvalidPost)
	}

	// Scoring and extraction only depend on the text, so they run in parallel.
	scoreCh := make(chan scoreOutcome, 1)
	go func() {
		result, err := a.scorer.Score(ctx, post.Text)
		scoreCh <- scoreOutcome{result: result, err: err}
	}()

	keywords, entities, extErr := a.extractor.Extract(post.Text)
	if extErr != nil {
		slog.Warn("Extraction degraded, continuing with empty lists",
			"post_id", post.ID, "error", extErr)
		metrics.PostAnalysisFailures.WithLabelValues("extraction").Inc()
		keywords, entities = nil, nil
	}

	outcome := <-scoreCh
	if outcome.err != nil {
		metrics.PostAnalysisFailures.WithLabelValues("scoring").Inc()
		return domain.AnalyzedPost{}, fmt.Errorf("%w: post %s: %v", domain.ErrScoringFailed, post.ID, outcome.err)
	}
	sentiment := outcome.result

	engagement := engagementOf(post.Metrics)
	reliability := reliabilityOf(sentiment, engagement)

	label := a.dist.Record(sentiment.Score)
	metrics.PostsAnalyzedTotal.WithLabelValues(string(label)).Inc()

	return domain.AnalyzedPost{
		Post:        post,
		Sentiment:   sentiment,
		Engagement:  engagement,
		Reliability: reliability,
		Keywords:    keywords,
		Entities:    entities,
		Strength:    domain.ClassifyStrength(sentiment.Score),
		IsPositive:  label == domain.LabelPositive,
		IsNegative:  label == domain.LabelNegative,
		IsNeutral:   label == domain.LabelNeutral,
	}, nil
}

func engagementOf(m domain.PostMetrics) float64 {
	return retweetWeight*float64(m.Retweets) +
		replyWeight*float64(m.Replies) +
		likeWeight*float64(m.Likes) +
		quoteWeight*float64(m.Quotes)
}

// reliabilityOf blends sentiment magnitude, scorer confidence, and
// engagement normalized against a 1000-interaction ceiling.
func reliabilityOf(s domain.SentimentResult, engagement float64) float64 {
	abs := s.Score
	if abs < 0 {
		abs = -abs
	}
	normalized := engagement / 1000
	if normalized > 1 {
		normalized = 1
	}
	return 0.4*abs + 0.4*s.Confidence + 0.2*normalized
}
