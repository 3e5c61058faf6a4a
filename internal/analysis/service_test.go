package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	apperrors "github.com/cdobratz/nfl-sentiment-analyzer/internal/errors"
)

type stubEventSource struct {
	event *domain.Event
	err   error
	calls int
}

func (s *stubEventSource) GetEventDetails(context.Context, string) (*domain.Event, error) {
	s.calls++
	return s.event, s.err
}

type stubPostSource struct {
	posts []domain.Post
	err   error
	calls int
}

func (s *stubPostSource) FetchPosts(context.Context, string, []string) ([]domain.Post, error) {
	s.calls++
	return s.posts, s.err
}

func testEvent() *domain.Event {
	return &domain.Event{
		ID:       "401547439",
		HomeTeam: "Chiefs",
		AwayTeam: "Bills",
		Date:     time.Date(2025, 1, 26, 18, 30, 0, 0, time.UTC),
	}
}

func newTestService(events domain.EventSource, posts domain.PostSource, scorer domain.Scorer) *Service {
	cache := NewResultCache(NewMemoryStore(5*time.Minute, clockwork.NewFakeClock()), 5*time.Minute)
	return NewService(posts, events, scorer, emptyExtractor(), cache, 10, 10)
}

func TestEventAnalysisForFullPipeline(t *testing.T) {
	events := &stubEventSource{event: testEvent()}
	posts := &stubPostSource{posts: []domain.Post{
		{ID: "1", Text: "Chiefs looked great tonight", Metrics: domain.PostMetrics{Likes: 50}},
		{ID: "2", Text: "Bills defense was terrible", Metrics: domain.PostMetrics{Likes: 200}},
		{ID: "3", Text: "Kickoff in Kansas City", Metrics: domain.PostMetrics{Likes: 10}},
	}}
	scores := map[string]float64{
		"Chiefs looked great tonight": 0.8,
		"Bills defense was terrible":  -0.6,
		"Kickoff in Kansas City":      0.0,
	}
	scorer := scorerFunc(func(_ context.Context, text string) (domain.SentimentResult, error) {
		return domain.SentimentResult{Score: scores[text], Confidence: 0.9}, nil
	})

	svc := newTestService(events, posts, scorer)
	result, err := svc.EventAnalysisFor(context.Background(), "401547439")
	require.NoError(t, err)

	assert.Equal(t, "401547439", result.EventID)
	assert.Equal(t, 3, result.PostCount)
	assert.Equal(t, domain.DistributionCounts{Positive: 1, Negative: 1, Neutral: 1, Total: 3}, result.Distribution)

	// Ranked by engagement: post 2 (200 likes) first.
	require.Len(t, result.Ranked, 3)
	assert.Equal(t, "2", result.Ranked[0].Post.ID)

	assert.InDelta(t, 0.8, result.HomeSentiment, 1e-9)
	assert.InDelta(t, -0.6, result.AwaySentiment, 1e-9)
	assert.False(t, result.AnalyzedAt.IsZero())
}

func TestEventAnalysisForCachesResult(t *testing.T) {
	events := &stubEventSource{event: testEvent()}
	posts := &stubPostSource{posts: []domain.Post{{ID: "1", Text: "hello"}}}
	svc := newTestService(events, posts, fixedScorer(0.5, 0.9))

	_, err := svc.EventAnalysisFor(context.Background(), "401547439")
	require.NoError(t, err)
	_, err = svc.EventAnalysisFor(context.Background(), "401547439")
	require.NoError(t, err)

	assert.Equal(t, 1, events.calls)
	assert.Equal(t, 1, posts.calls)
}

func TestEventAnalysisForEmptyPostsIsValid(t *testing.T) {
	events := &stubEventSource{event: testEvent()}
	posts := &stubPostSource{posts: nil}
	svc := newTestService(events, posts, fixedScorer(0, 0))

	result, err := svc.EventAnalysisFor(context.Background(), "401547439")
	require.NoError(t, err)

	assert.Equal(t, 0, result.PostCount)
	assert.Empty(t, result.Ranked)
	assert.Equal(t, Summary{}, result.Summary)
}

func TestEventAnalysisForBlankID(t *testing.T) {
	svc := newTestService(&stubEventSource{}, &stubPostSource{}, fixedScorer(0, 0))

	_, err := svc.EventAnalysisFor(context.Background(), "  ")

	structured := apperrors.AsStructuredError(err)
	require.NotNil(t, structured)
	assert.Equal(t, apperrors.TypeValidation, structured.Type)
}

func TestEventAnalysisForUnknownEvent(t *testing.T) {
	events := &stubEventSource{err: domain.ErrEventNotFound}
	svc := newTestService(events, &stubPostSource{}, fixedScorer(0, 0))

	_, err := svc.EventAnalysisFor(context.Background(), "nope")

	structured := apperrors.AsStructuredError(err)
	require.NotNil(t, structured)
	assert.Equal(t, apperrors.TypeNotFound, structured.Type)
}

func TestEventAnalysisForFetchFailure(t *testing.T) {
	events := &stubEventSource{event: testEvent()}
	posts := &stubPostSource{err: errors.New("twitter 503")}
	svc := newTestService(events, posts, fixedScorer(0, 0))

	_, err := svc.EventAnalysisFor(context.Background(), "401547439")

	structured := apperrors.AsStructuredError(err)
	require.NotNil(t, structured)
	assert.Equal(t, apperrors.TypeExternal, structured.Type)
	assert.Equal(t, "401547439", structured.Context["event_id"])
}

func TestRefreshRecomputes(t *testing.T) {
	events := &stubEventSource{event: testEvent()}
	posts := &stubPostSource{posts: []domain.Post{{ID: "1", Text: "hello"}}}
	svc := newTestService(events, posts, fixedScorer(0.5, 0.9))

	_, err := svc.EventAnalysisFor(context.Background(), "401547439")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), "401547439")
	require.NoError(t, err)

	assert.Equal(t, 2, events.calls)
}

func TestWeeklySummaryFor(t *testing.T) {
	events := &stubEventSource{event: testEvent()}
	posts := &stubPostSource{posts: []domain.Post{
		{ID: "1", Text: "a"},
		{ID: "2", Text: "b"},
	}}
	svc := newTestService(events, posts, fixedScorer(0.5, 0.8))

	summary, err := svc.WeeklySummaryFor(context.Background(), "401547439")
	require.NoError(t, err)

	assert.Equal(t, "401547439", summary.EventID)
	assert.InDelta(t, 0.5, summary.SentimentMean, 1e-9)
	assert.InDelta(t, 0.8, summary.Confidence, 1e-9)
	assert.Equal(t, 2, summary.PostCount)
}

func TestTrendsForShares(t *testing.T) {
	events := &stubEventSource{event: testEvent()}
	posts := &stubPostSource{posts: []domain.Post{
		{ID: "1", Text: "a"},
		{ID: "2", Text: "b"},
		{ID: "3", Text: "c"},
		{ID: "4", Text: "d"},
	}}
	scores := []float64{0.8, 0.6, -0.5, 0.1}
	var call int
	scorer := scorerFunc(func(context.Context, string) (domain.SentimentResult, error) {
		s := scores[call%len(scores)]
		call++
		return domain.SentimentResult{Score: s, Confidence: 0.9}, nil
	})
	svc := NewService(posts, events, scorer, emptyExtractor(),
		NewResultCache(NewMemoryStore(5*time.Minute, clockwork.NewFakeClock()), 5*time.Minute), 1, 10)

	report, err := svc.TrendsFor(context.Background(), "401547439", 7)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, report.PositiveShare, 1e-9)
	assert.InDelta(t, 0.25, report.NegativeShare, 1e-9)
	assert.InDelta(t, 0.25, report.NeutralShare, 1e-9)
	assert.Equal(t, 4, report.PostCount)
	assert.Equal(t, report.PeriodEnd.AddDate(0, 0, -7), report.PeriodStart)
}

func TestTrendsForRejectsBadWindow(t *testing.T) {
	svc := newTestService(&stubEventSource{}, &stubPostSource{}, fixedScorer(0, 0))

	for _, days := range []int{0, -1, 31} {
		_, err := svc.TrendsFor(context.Background(), "401547439", days)
		structured := apperrors.AsStructuredError(err)
		require.NotNil(t, structured, "days=%d", days)
		assert.Equal(t, apperrors.TypeValidation, structured.Type)
	}
}
