package analysis

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/metrics"
)

// DefaultBatchSize bounds in-flight analyzer calls per chunk. It exists to
// keep a rate-limited remote scorer from being swamped.
const DefaultBatchSize = 10

// ProcessBatch analyzes posts in fixed-size chunks. Chunks run strictly in
// order; items within a chunk run concurrently and are joined before the
// next chunk starts. Failed items are logged and omitted; successes keep
// input order. A single bad post never aborts the batch.
func ProcessBatch(ctx context.Context, analyzer *Analyzer, posts []domain.Post, batchSize int) []domain.AnalyzedPost {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	start := time.Now()
	slots := make([]*domain.AnalyzedPost, len(posts))

	for chunkStart := 0; chunkStart < len(posts); chunkStart += batchSize {
		chunkEnd := chunkStart + batchSize
		if chunkEnd > len(posts) {
			chunkEnd = len(posts)
		}

		var wg sync.WaitGroup
		for i := chunkStart; i < chunkEnd; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				analyzed, err := analyzer.Analyze(ctx, posts[i])
				if err != nil {
					slog.Warn("Dropping post from batch",
						"post_id", posts[i].ID, "error", err)
					return
				}
				slots[i] = &analyzed
			}(i)
		}
		wg.Wait()
	}

	results := make([]domain.AnalyzedPost, 0, len(posts))
	for _, slot := range slots {
		if slot != nil {
			results = append(results, *slot)
		}
	}

	metrics.BatchDuration.Observe(time.Since(start).Seconds())
	metrics.BatchSizeProcessed.Observe(float64(len(posts)))
	return results
}
