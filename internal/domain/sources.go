package domain

import "context"

// PostSource fetches posts about an event. An empty slice means "no matching
// posts" and is not an error.
type PostSource interface {
	FetchPosts(ctx context.Context, eventID string, teamNames []string) ([]Post, error)
}

// EventSource provides sporting-event metadata used to derive search terms.
type EventSource interface {
	GetEventDetails(ctx context.Context, eventID string) (*Event, error)
}

// Scorer maps raw text to a sentiment result. Implementations must be
// deterministic for identical input so results can be cached.
type Scorer interface {
	Score(ctx context.Context, text string) (SentimentResult, error)
}
