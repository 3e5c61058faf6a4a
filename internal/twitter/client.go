package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/metrics"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/platform/retry"
)

const (
	// DefaultBaseURL is the Twitter API v2 root.
	DefaultBaseURL = "https://api.twitter.com"

	searchPath = "/2/tweets/search/recent"

	// maxResults is the per-request page size. 100 is the API maximum for
	// recent search.
	maxResults = 100
)

// analystAuthors are well-known NFL reporting accounts. Posts from these
// author usernames are flagged so downstream consumers can weight them.
var analystAuthors = map[string]bool{
	"AdamSchefter":  true,
	"RapSheet":      true,
	"FieldYates":    true,
	"MatthewBerry":  true,
	"JamesPalmerTV": true,
}

// RequestError carries the HTTP status of a failed API call.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("twitter API request failed with status %d: %s", e.StatusCode, e.Body)
}

// Client fetches recent posts from the Twitter API v2 recent search endpoint.
// A local token-bucket limiter keeps request volume under the API quota so
// most rate-limit handling happens before the wire.
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
	retryPolicy retry.Policy
}

// NewClient creates a Twitter API client. requestsPerMinute bounds the local
// request rate; zero disables local limiting.
func NewClient(baseURL, bearerToken string, requestsPerMinute int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limit := rate.Inf
	burst := 1
	if requestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(requestsPerMinute))
		burst = requestsPerMinute
	}

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		bearerToken: bearerToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		limiter:     rate.NewLimiter(limit, burst),
		retryPolicy: retry.Policy{
			MaxAttempts:      3,
			InitialBackoff:   500 * time.Millisecond,
			RateLimitBackoff: 5 * time.Second,
		},
	}
}

// searchResponse mirrors the recent search payload.
type searchResponse struct {
	Data []struct {
		ID            string    `json:"id"`
		Text          string    `json:"text"`
		AuthorID      string    `json:"author_id"`
		CreatedAt     time.Time `json:"created_at"`
		PublicMetrics struct {
			RetweetCount int `json:"retweet_count"`
			ReplyCount   int `json:"reply_count"`
			LikeCount    int `json:"like_count"`
			QuoteCount   int `json:"quote_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"users"`
	} `json:"includes"`
}

// FetchPosts searches recent posts mentioning any of the team names.
// Retweets are excluded at the query level so engagement counts are not
// double-counted.
func (c *Client) FetchPosts(ctx context.Context, eventID string, teamNames []string) ([]domain.Post, error) {
	query := buildQuery(teamNames)
	if query == "" {
		return nil, fmt.Errorf("no team names to search for event %s", eventID)
	}

	resp, err := retry.Do(ctx, c.retryPolicy, classifyRequestError, func() (*searchResponse, error) {
		return c.search(ctx, query)
	})
	if err != nil {
		return nil, fmt.Errorf("recent search for event %s: %w", eventID, err)
	}

	usernames := make(map[string]string, len(resp.Includes.Users))
	for _, u := range resp.Includes.Users {
		usernames[u.ID] = u.Username
	}

	posts := make([]domain.Post, 0, len(resp.Data))
	for _, t := range resp.Data {
		posts = append(posts, domain.Post{
			ID:        t.ID,
			Text:      t.Text,
			AuthorID:  t.AuthorID,
			CreatedAt: t.CreatedAt,
			Metrics: domain.PostMetrics{
				Retweets: t.PublicMetrics.RetweetCount,
				Replies:  t.PublicMetrics.ReplyCount,
				Likes:    t.PublicMetrics.LikeCount,
				Quotes:   t.PublicMetrics.QuoteCount,
			},
			IsAnalyst: analystAuthors[usernames[t.AuthorID]],
		})
	}
	return posts, nil
}

func (c *Client) search(ctx context.Context, query string) (*searchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.UpstreamRateLimitWaits.Inc()
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", fmt.Sprint(maxResults))
	params.Set("tweet.fields", "created_at,public_metrics,author_id")
	params.Set("expansions", "author_id")
	params.Set("user.fields", "username")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("twitter", "error").Inc()
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestDuration.WithLabelValues("twitter").Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues("twitter", fmt.Sprint(resp.StatusCode)).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("twitter", "200").Inc()

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &parsed, nil
}

// buildQuery turns team names into a recent-search query. Example:
// ("Chiefs" OR "Bills") -is:retweet lang:en
func buildQuery(teamNames []string) string {
	terms := make([]string, 0, len(teamNames))
	for _, name := range teamNames {
		name = strings.TrimSpace(name)
		if name != "" {
			terms = append(terms, `"`+name+`"`)
		}
	}
	if len(terms) == 0 {
		return ""
	}
	return "(" + strings.Join(terms, " OR ") + ") -is:retweet lang:en"
}

// classifyRequestError maps API failures to retry behavior: 429 waits out
// the rate-limit window, 5xx retries with normal backoff, anything else is
// permanent.
func classifyRequestError(err error) retry.Action {
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		return retry.Retry
	}
	switch {
	case reqErr.StatusCode == http.StatusTooManyRequests:
		return retry.After
	case reqErr.StatusCode >= 500:
		return retry.Retry
	default:
		return retry.Stop
	}
}
