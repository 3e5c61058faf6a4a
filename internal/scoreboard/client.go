// Package scoreboard implements the sporting-event metadata client used to
// derive post search terms.
package scoreboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/metrics"
)

// Client fetches event details from a scoreboard API. The endpoint shape is
// GET {base}/events/{id} returning home/away competitor names and the
// scheduled date.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a scoreboard client for baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type eventResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Competitors []struct {
		Name     string `json:"name"`
		HomeAway string `json:"homeAway"`
	} `json:"competitors"`
}

// GetEventDetails fetches metadata for eventID. A 404 maps to
// domain.ErrEventNotFound.
func (c *Client) GetEventDetails(ctx context.Context, eventID string) (*domain.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events/"+eventID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build event request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("scoreboard", "error").Inc()
		return nil, fmt.Errorf("event request failed: %w", err)
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestDuration.WithLabelValues("scoreboard").Observe(time.Since(start).Seconds())
	metrics.UpstreamRequestsTotal.WithLabelValues("scoreboard", fmt.Sprint(resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("event %s: %w", eventID, domain.ErrEventNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("scoreboard API returned status %d for event %s", resp.StatusCode, eventID)
	}

	var parsed eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode event response: %w", err)
	}

	event := &domain.Event{ID: parsed.ID}
	if event.ID == "" {
		event.ID = eventID
	}
	if parsed.Date != "" {
		date, err := time.Parse(time.RFC3339, parsed.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event date %q: %w", parsed.Date, err)
		}
		event.Date = date
	}
	for _, comp := range parsed.Competitors {
		switch comp.HomeAway {
		case "home":
			event.HomeTeam = comp.Name
		case "away":
			event.AwayTeam = comp.Name
		}
	}

	if event.HomeTeam == "" || event.AwayTeam == "" {
		return nil, fmt.Errorf("event %s is missing competitors", eventID)
	}
	return event, nil
}
