package analysis

import (
	"context"
	"time"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/metrics"
)

// ComputeFunc produces a fresh analysis result on cache miss.
type ComputeFunc func(ctx context.Context) (EventAnalysis, error)

// ResultCache wraps the analyze-and-rank pipeline behind a per-event cache
// key. Repeated requests within the TTL window return the stored result
// without rerunning analysis. Racing writers on the same key are harmless:
// both computed the same inputs, last writer wins.
type ResultCache struct {
	store ResultStore
	ttl   time.Duration
}

// NewResultCache creates a facade over store with the given entry TTL.
func NewResultCache(store ResultStore, ttl time.Duration) *ResultCache {
	return &ResultCache{store: store, ttl: ttl}
}

// GetOrCompute returns the cached value for key, or invokes compute and
// stores its result. Store failures propagate: the caller decides whether to
// surface them or serve stale data.
func (rc *ResultCache) GetOrCompute(ctx context.Context, key string, compute ComputeFunc) (EventAnalysis, error) {
	cached, ok, err := rc.store.Get(ctx, key)
	if err != nil {
		return EventAnalysis{}, err
	}
	if ok {
		metrics.ResultCacheHits.Inc()
		return *cached, nil
	}
	metrics.ResultCacheMisses.Inc()

	value, err := compute(ctx)
	if err != nil {
		return EventAnalysis{}, err
	}

	if err := rc.store.Set(ctx, key, value, rc.ttl); err != nil {
		return EventAnalysis{}, err
	}
	return value, nil
}

// Invalidate removes key from the cache; the next GetOrCompute recomputes.
func (rc *ResultCache) Invalidate(ctx context.Context, key string) error {
	metrics.ResultCacheInvalidations.Inc()
	return rc.store.Delete(ctx, key)
}
