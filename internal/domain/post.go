package domain

import "time"

// PostMetrics holds the public interaction counts of a post.
type PostMetrics struct {
	Retweets int `json:"retweets"`
	Replies  int `json:"replies"`
	Likes    int `json:"likes"`
	Quotes   int `json:"quotes"`
}

// Post is a raw social-media post as delivered by the post source.
// Posts are immutable once ingested; the pipeline only reads them.
type Post struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	AuthorID  string      `json:"author_id"`
	CreatedAt time.Time   `json:"created_at"`
	Metrics   PostMetrics `json:"metrics"`
	IsAnalyst bool        `json:"is_analyst"`
}

// Event is the metadata of a sporting event, consumed only to derive
// search terms for the post source.
type Event struct {
	ID       string    `json:"id"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
	Date     time.Time `json:"date"`
}
