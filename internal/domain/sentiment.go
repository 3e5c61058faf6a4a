package domain

// SentimentLabel classifies a sentiment score.
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "positive"
	LabelNegative SentimentLabel = "negative"
	LabelNeutral  SentimentLabel = "neutral"
)

// Classification thresholds. A score at exactly the boundary counts as
// positive/negative; only scores strictly between the thresholds are neutral.
const (
	PositiveThreshold = 0.3
	NegativeThreshold = -0.3
)

// SentimentResult is the output of a single scoring call.
// Score is in [-1, 1], Confidence in [0, 1].
type SentimentResult struct {
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Label      SentimentLabel `json:"label"`
}

// ClassifyScore maps a score to a label using the inclusive thresholds.
// This is the single classification used for distribution counters and the
// per-post sentiment flags, keeping both views consistent.
func ClassifyScore(score float64) SentimentLabel {
	switch {
	case score >= PositiveThreshold:
		return LabelPositive
	case score <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// SentimentStrength buckets |score| into coarse intensity levels.
type SentimentStrength string

const (
	StrengthExtreme  SentimentStrength = "extreme"
	StrengthStrong   SentimentStrength = "strong"
	StrengthModerate SentimentStrength = "moderate"
	StrengthMild     SentimentStrength = "mild"
)

// ClassifyStrength buckets the absolute value of a score.
func ClassifyStrength(score float64) SentimentStrength {
	abs := score
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs > 0.7:
		return StrengthExtreme
	case abs > 0.5:
		return StrengthStrong
	case abs > 0.3:
		return StrengthModerate
	default:
		return StrengthMild
	}
}
