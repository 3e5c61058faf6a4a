package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/analysis"
	apperrors "github.com/cdobratz/nfl-sentiment-analyzer/internal/errors"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/platform/config"
)

// mockService records calls and returns canned pipeline results.
type mockService struct {
	analysisResult analysis.EventAnalysis
	analysisErr    error
	weekly         analysis.WeeklySummary
	trends         analysis.TrendReport
	trendsErr      error
	refreshCalls   int
	trendsDays     int
	lastEventID    string
}

func (m *mockService) EventAnalysisFor(_ context.Context, eventID string) (analysis.EventAnalysis, error) {
	m.lastEventID = eventID
	return m.analysisResult, m.analysisErr
}

func (m *mockService) WeeklySummaryFor(_ context.Context, eventID string) (analysis.WeeklySummary, error) {
	m.lastEventID = eventID
	return m.weekly, m.analysisErr
}

func (m *mockService) TrendsFor(_ context.Context, eventID string, days int) (analysis.TrendReport, error) {
	m.lastEventID = eventID
	m.trendsDays = days
	if m.trendsErr != nil {
		return analysis.TrendReport{}, m.trendsErr
	}
	return m.trends, nil
}

func (m *mockService) Refresh(_ context.Context, eventID string) (analysis.EventAnalysis, error) {
	m.lastEventID = eventID
	m.refreshCalls++
	return m.analysisResult, m.analysisErr
}

// mockRedisClient fakes readiness ping responses.
type mockRedisClient struct {
	pingErr error
}

func (m *mockRedisClient) Ping(ctx context.Context) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx)
	if m.pingErr != nil {
		cmd.SetErr(m.pingErr)
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}

func newTestServer(service SentimentService, redisClient RedisHealthChecker) *Server {
	cfg := &config.Config{Port: "0"}
	return NewServer(cfg, service, redisClient)
}

func doRequest(srv *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleGameDetails(t *testing.T) {
	svc := &mockService{
		analysisResult: analysis.EventAnalysis{
			EventID:   "401547439",
			PostCount: 12,
			Summary:   analysis.Summary{Total: 12, Positive: 7, Negative: 3, Neutral: 2},
		},
	}
	srv := newTestServer(svc, nil)

	rec := doRequest(srv, http.MethodGet, "/api/sentiment/game/401547439/details")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "401547439", svc.lastEventID)

	var body analysis.EventAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 12, body.PostCount)
	assert.Equal(t, 7, body.Summary.Positive)
}

func TestHandleGameDetailsNotFound(t *testing.T) {
	svc := &mockService{analysisErr: apperrors.NotFoundError("event not found")}
	srv := newTestServer(svc, nil)

	rec := doRequest(srv, http.MethodGet, "/api/sentiment/game/nope/details")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperrors.TypeNotFound, body.Type)
}

func TestHandleGameDetailsUpstreamFailure(t *testing.T) {
	svc := &mockService{analysisErr: apperrors.ExternalError("failed to fetch posts", errors.New("503"))}
	srv := newTestServer(svc, nil)

	rec := doRequest(srv, http.MethodGet, "/api/sentiment/game/e1/details")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleWeeklySentiment(t *testing.T) {
	svc := &mockService{weekly: analysis.WeeklySummary{EventID: "e1", SentimentMean: 0.42, PostCount: 9}}
	srv := newTestServer(svc, nil)

	rec := doRequest(srv, http.MethodGet, "/api/sentiment/weekly/e1")

	require.Equal(t, http.StatusOK, rec.Code)

	var body analysis.WeeklySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 0.42, body.SentimentMean, 1e-9)
	assert.Equal(t, 9, body.PostCount)
}

func TestHandleSentimentTrendsDefaultsDays(t *testing.T) {
	svc := &mockService{trends: analysis.TrendReport{EventID: "e1"}}
	srv := newTestServer(svc, nil)

	rec := doRequest(srv, http.MethodGet, "/api/sentiment/trends/e1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, svc.trendsDays)
}

func TestHandleSentimentTrendsCustomDays(t *testing.T) {
	svc := &mockService{trends: analysis.TrendReport{EventID: "e1"}}
	srv := newTestServer(svc, nil)

	rec := doRequest(srv, http.MethodGet, "/api/sentiment/trends/e1?days=14")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 14, svc.trendsDays)
}

func TestHandleSentimentTrendsRejectsNonInteger(t *testing.T) {
	srv := newTestServer(&mockService{}, nil)

	rec := doRequest(srv, http.MethodGet, "/api/sentiment/trends/e1?days=soon")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSentimentTrendsRejectsOutOfRange(t *testing.T) {
	svc := &mockService{trendsErr: apperrors.ValidationError("days must be between 1 and 30")}
	srv := newTestServer(svc, nil)

	rec := doRequest(srv, http.MethodGet, "/api/sentiment/trends/e1?days=31")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRefresh(t *testing.T) {
	svc := &mockService{analysisResult: analysis.EventAnalysis{EventID: "e1"}}
	srv := newTestServer(svc, nil)

	rec := doRequest(srv, http.MethodPost, "/api/sentiment/game/e1/refresh")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.refreshCalls)
}

func TestHandleLiveness(t *testing.T) {
	srv := newTestServer(&mockService{}, nil)

	rec := doRequest(srv, http.MethodGet, "/health/live")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleReadinessWithoutRedis(t *testing.T) {
	srv := newTestServer(&mockService{}, nil)

	rec := doRequest(srv, http.MethodGet, "/health/ready")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleReadinessRedisHealthy(t *testing.T) {
	srv := newTestServer(&mockService{}, &mockRedisClient{})

	rec := doRequest(srv, http.MethodGet, "/health/ready")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleReadinessRedisDown(t *testing.T) {
	srv := newTestServer(&mockService{}, &mockRedisClient{pingErr: errors.New("connection refused")})

	rec := doRequest(srv, http.MethodGet, "/health/ready")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "redis", body["failed_check"])
}
