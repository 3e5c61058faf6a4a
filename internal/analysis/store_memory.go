package analysis

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/cache"
)

// MemoryStore keeps analysis results in an in-process TTL cache.
type MemoryStore struct {
	cache *cache.Cache[string, EventAnalysis]
}

// NewMemoryStore creates an in-memory result store with the given default TTL.
func NewMemoryStore(ttl time.Duration, clock clockwork.Clock) *MemoryStore {
	return &MemoryStore{
		cache: cache.New[string, EventAnalysis]("analysis_results", ttl, clock),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (*EventAnalysis, bool, error) {
	value, ok := s.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	return &value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value EventAnalysis, ttl time.Duration) error {
	s.cache.SetTTL(key, value, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// StartEvictionTimer starts background reclamation of expired entries.
// Returns a stop function.
func (s *MemoryStore) StartEvictionTimer(interval time.Duration) func() {
	return s.cache.StartEvictionTimer(interval)
}
