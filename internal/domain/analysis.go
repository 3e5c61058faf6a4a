package domain

// EntityType categorizes an extracted entity.
type EntityType string

const (
	EntityTeam     EntityType = "TEAM"
	EntityPosition EntityType = "POSITION"
	EntityPlayer   EntityType = "PLAYER"
	EntityStat     EntityType = "STAT"
)

// Entity is a typed named entity found in a post's text.
type Entity struct {
	Name string     `json:"name"`
	Type EntityType `json:"type"`
}

// KeywordEntry is a keyword with its accumulated relevance weight.
type KeywordEntry struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// AnalyzedPost is the per-post output of the analysis pipeline.
// Exactly one of IsPositive/IsNegative/IsNeutral is true, derived from the
// score via the same thresholds that feed the distribution counters.
type AnalyzedPost struct {
	Post        Post              `json:"post"`
	Sentiment   SentimentResult   `json:"sentiment"`
	Engagement  float64           `json:"engagement"`
	Reliability float64           `json:"reliability"`
	Keywords    []KeywordEntry    `json:"keywords"`
	Entities    []Entity          `json:"entities"`
	Strength    SentimentStrength `json:"sentiment_strength"`
	IsPositive  bool              `json:"is_positive"`
	IsNegative  bool              `json:"is_negative"`
	IsNeutral   bool              `json:"is_neutral"`
}

// DistributionCounts is a snapshot of the running sentiment distribution.
type DistributionCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Total    int `json:"total"`
}
