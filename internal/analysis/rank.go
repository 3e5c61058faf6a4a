package analysis

import (
	"sort"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
)

// DefaultRankLimit caps the ranked result set.
const DefaultRankLimit = 10

// Rank returns the top posts by engagement, descending. The sort is stable:
// equal-engagement posts keep their input order. The input slice is not
// modified.
func Rank(posts []domain.AnalyzedPost, limit int) []domain.AnalyzedPost {
	if limit < 1 {
		limit = DefaultRankLimit
	}

	ranked := make([]domain.AnalyzedPost, len(posts))
	copy(ranked, posts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement > ranked[j].Engagement
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Summary holds aggregate statistics over a set of analyzed posts.
type Summary struct {
	Total         int     `json:"total"`
	Positive      int     `json:"positive"`
	Negative      int     `json:"negative"`
	Neutral       int     `json:"neutral"`
	AvgScore      float64 `json:"avg_score"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// Aggregate computes label counts and score/confidence means over posts.
// Callers pass either the full analyzed set or a ranked subset, depending on
// whether they need overall or top-posts statistics.
func Aggregate(posts []domain.AnalyzedPost) Summary {
	s := Summary{Total: len(posts)}
	if len(posts) == 0 {
		return s
	}

	var scoreSum, confidenceSum float64
	for _, p := range posts {
		scoreSum += p.Sentiment.Score
		confidenceSum += p.Sentiment.Confidence
		switch {
		case p.IsPositive:
			s.Positive++
		case p.IsNegative:
			s.Negative++
		default:
			s.Neutral++
		}
	}

	s.AvgScore = scoreSum / float64(len(posts))
	s.AvgConfidence = confidenceSum / float64(len(posts))
	return s
}
