package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
)

func makePosts(n int) []domain.Post {
	posts := make([]domain.Post, n)
	for i := range posts {
		posts[i] = domain.Post{ID: fmt.Sprintf("post-%d", i), Text: fmt.Sprintf("text %d", i)}
	}
	return posts
}

func TestProcessBatchAnalyzesAll(t *testing.T) {
	analyzer := NewAnalyzer(fixedScorer(0.5, 0.9), emptyExtractor(), NewDistribution())

	results := ProcessBatch(context.Background(), analyzer, makePosts(25), 10)

	assert.Len(t, results, 25)
}

func TestProcessBatchOmitsFailuresKeepsOrder(t *testing.T) {
	scorer := scorerFunc(func(_ context.Context, text string) (domain.SentimentResult, error) {
		if text == "text 2" || text == "text 5" {
			return domain.SentimentResult{}, errors.New("boom")
		}
		return domain.SentimentResult{Score: 0.5, Confidence: 0.9}, nil
	})
	analyzer := NewAnalyzer(scorer, emptyExtractor(), NewDistribution())

	results := ProcessBatch(context.Background(), analyzer, makePosts(7), 3)

	assert.Len(t, results, 5)
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Post.ID)
	}
	assert.Equal(t, []string{"post-0", "post-1", "post-3", "post-4", "post-6"}, ids)
}

func TestProcessBatchBoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int64
	scorer := scorerFunc(func(context.Context, string) (domain.SentimentResult, error) {
		current := inFlight.Add(1)
		for {
			p := peak.Load()
			if current <= p || peak.CompareAndSwap(p, current) {
				break
			}
		}
		defer inFlight.Add(-1)
		return domain.SentimentResult{Score: 0.5, Confidence: 0.9}, nil
	})
	analyzer := NewAnalyzer(scorer, emptyExtractor(), NewDistribution())

	results := ProcessBatch(context.Background(), analyzer, makePosts(20), 4)

	assert.Len(t, results, 20)
	assert.LessOrEqual(t, peak.Load(), int64(4))
}

func TestProcessBatchEmptyInput(t *testing.T) {
	analyzer := NewAnalyzer(fixedScorer(0, 0), emptyExtractor(), NewDistribution())

	results := ProcessBatch(context.Background(), analyzer, nil, 10)

	assert.Empty(t, results)
}

func TestProcessBatchDefaultsInvalidBatchSize(t *testing.T) {
	analyzer := NewAnalyzer(fixedScorer(0, 0), emptyExtractor(), NewDistribution())

	results := ProcessBatch(context.Background(), analyzer, makePosts(3), 0)

	assert.Len(t, results, 3)
}
