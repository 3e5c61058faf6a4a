package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/metrics"
)

const remoteCallTimeout = 10 * time.Second

// BackendError reports a failed call to the remote scoring backend. It is a
// distinct error so callers can tell a backend failure apart from a
// legitimately neutral result.
type BackendError struct {
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sentiment backend: %v", e.Err)
	}
	return fmt.Sprintf("sentiment backend returned status %d", e.StatusCode)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Wire types for the ML scoring service.
type scoreRequest struct {
	Texts     []string `json:"texts"`
	ModelName string   `json:"model_name"`
}

type scoreResponse struct {
	Text      string `json:"text"`
	Sentiment struct {
		Score      float64 `json:"score"`
		Confidence float64 `json:"confidence"`
	} `json:"sentiment"`
	Label string `json:"label"`
}

// RemoteScorer scores text via an external ML service (bertweet-style
// sentiment API). Calls go through a circuit breaker so a struggling backend
// fails fast instead of holding up every batch.
type RemoteScorer struct {
	url       string
	modelName string
	maxBatch  int
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker
}

// NewRemoteScorer creates a scorer calling the ML service at url.
// maxBatch bounds the number of texts per request.
func NewRemoteScorer(url, modelName string, maxBatch int) *RemoteScorer {
	settings := gobreaker.Settings{
		Name: "sentiment-backend",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		Timeout: 30 * time.Second,
		OnStateChange: func(_ string, _, to gobreaker.State) {
			metrics.ScorerBreakerState.Set(float64(to))
		},
	}

	return &RemoteScorer{
		url:       url,
		modelName: modelName,
		maxBatch:  maxBatch,
		client:    &http.Client{Timeout: remoteCallTimeout},
		breaker:   gobreaker.NewCircuitBreaker(settings),
	}
}

// Score implements domain.Scorer for a single text.
func (s *RemoteScorer) Score(ctx context.Context, text string) (domain.SentimentResult, error) {
	results, err := s.ScoreBatch(ctx, []string{text})
	if err != nil {
		return domain.SentimentResult{}, err
	}
	if len(results) != 1 {
		return domain.SentimentResult{}, &BackendError{Err: fmt.Errorf("expected 1 result, got %d", len(results))}
	}
	return results[0], nil
}

// ScoreBatch scores texts in request-size-bounded chunks and returns results
// in input order. Any chunk failure fails the whole call.
func (s *RemoteScorer) ScoreBatch(ctx context.Context, texts []string) ([]domain.SentimentResult, error) {
	results := make([]domain.SentimentResult, 0, len(texts))
	for start := 0; start < len(texts); start += s.maxBatch {
		end := start + s.maxBatch
		if end > len(texts) {
			end = len(texts)
		}
		chunk, err := s.scoreChunk(ctx, texts[start:end])
		if err != nil {
			metrics.ScorerRequestsTotal.WithLabelValues("remote", "error").Inc()
			return nil, err
		}
		metrics.ScorerRequestsTotal.WithLabelValues("remote", "ok").Inc()
		results = append(results, chunk...)
	}
	return results, nil
}

func (s *RemoteScorer) scoreChunk(ctx context.Context, texts []string) ([]domain.SentimentResult, error) {
	out, err := s.breaker.Execute(func() (any, error) {
		return s.doRequest(ctx, texts)
	})
	if err != nil {
		var backendErr *BackendError
		if !errors.As(err, &backendErr) {
			// Breaker-open and transport errors become backend errors too.
			return nil, &BackendError{Err: err}
		}
		return nil, backendErr
	}
	return out.([]domain.SentimentResult), nil
}

func (s *RemoteScorer) doRequest(ctx context.Context, texts []string) ([]domain.SentimentResult, error) {
	body, err := json.Marshal(scoreRequest{Texts: texts, ModelName: s.modelName})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	metrics.ScorerRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, &BackendError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &BackendError{StatusCode: resp.StatusCode}
	}

	var decoded []scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &BackendError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if len(decoded) != len(texts) {
		return nil, &BackendError{Err: fmt.Errorf("expected %d results, got %d", len(texts), len(decoded))}
	}

	results := make([]domain.SentimentResult, len(decoded))
	for i, r := range decoded {
		label := domain.SentimentLabel(r.Label)
		switch label {
		case domain.LabelPositive, domain.LabelNegative, domain.LabelNeutral:
		default:
			label = domain.LabelNeutral
		}
		results[i] = domain.SentimentResult{
			Score:      r.Sentiment.Score,
			Confidence: r.Sentiment.Confidence,
			Label:      label,
		}
	}
	return results, nil
}
