package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis Pipeline Metrics
var (
	// PostsAnalyzedTotal tracks analyzed posts by resulting label
	PostsAnalyzedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posts_analyzed_total",
			Help: "Total posts analyzed by sentiment label",
		},
		[]string{"label"},
	)

	// PostAnalysisFailures tracks per-post analysis failures by stage
	PostAnalysisFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_analysis_failures_total",
			Help: "Per-post analysis failures by stage (scoring/extraction)",
		},
		[]string{"stage"},
	)

	// BatchDuration tracks batch processing latency
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "batch_processing_duration_seconds",
			Help:    "Batch processing duration in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	// BatchSizeProcessed tracks the number of posts per processed batch
	BatchSizeProcessed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "batch_posts_processed",
			Help:    "Number of posts per processed batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

// Scorer Metrics
var (
	// ScorerRequestsTotal tracks scorer calls by backend and status
	ScorerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scorer_requests_total",
			Help: "Total sentiment scorer calls by backend (lexicon/remote) and status",
		},
		[]string{"backend", "status"},
	)

	// ScorerRequestDuration tracks remote scorer latency
	ScorerRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scorer_request_duration_seconds",
			Help:    "Remote scorer request duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	// ScorerBreakerState tracks the remote scorer circuit breaker state
	// (0=closed, 1=half-open, 2=open)
	ScorerBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "scorer_circuit_breaker_state",
			Help: "Remote scorer circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// Result Cache Metrics
var (
	// ResultCacheHits tracks analysis result cache hits
	ResultCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "result_cache_hits_total",
			Help: "Total analysis result cache hits",
		},
	)

	// ResultCacheMisses tracks analysis result cache misses
	ResultCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "result_cache_misses_total",
			Help: "Total analysis result cache misses",
		},
	)

	// ResultCacheInvalidations tracks explicit cache invalidations
	ResultCacheInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "result_cache_invalidations_total",
			Help: "Total explicit analysis result cache invalidations",
		},
	)

	// CacheEntries tracks current entries in the in-memory TTL cache
	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ttl_cache_entries",
			Help: "Current number of entries in a TTL cache by cache name",
		},
		[]string{"cache"},
	)

	// CacheEvictions tracks expired entries evicted from TTL caches
	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ttl_cache_evictions_total",
			Help: "Total expired TTL cache entries evicted by cache name",
		},
		[]string{"cache"},
	)
)

// Upstream Client Metrics
var (
	// UpstreamRequestsTotal tracks upstream API requests by service and status
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total upstream API requests by service (twitter/scoreboard) and status",
		},
		[]string{"service", "status"},
	)

	// UpstreamRequestDuration tracks upstream API latency by service
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream API request duration in seconds by service",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service"},
	)

	// UpstreamRateLimitWaits tracks time spent waiting on the local rate limiter
	UpstreamRateLimitWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "upstream_rate_limit_waits_total",
			Help: "Total requests delayed by the local post-source rate limiter",
		},
	)
)

// Redis Metrics
var (
	// RedisOpsTotal tracks Redis command executions by operation and status
	RedisOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_operations_total",
			Help: "Total Redis operations by command and status",
		},
		[]string{"operation", "status"},
	)

	// RedisOpDuration tracks Redis command latency by operation
	RedisOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds by command",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// RedisConnectionErrors tracks failed Redis connection attempts
	RedisConnectionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_connection_errors_total",
			Help: "Total failed Redis connection attempts",
		},
	)
)

// HTTP Request Metrics
// Note: http_errors_total{type} is provided by the internal/errors package.
