package sentiment

import (
	"context"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
	"github.com/cdobratz/nfl-sentiment-analyzer/internal/metrics"
)

// Word lists tuned for football chatter. Play outcomes carry sentiment in
// this domain: a touchdown is good news, a fumble is not.
var positiveWords = map[string]struct{}{
	"great": {}, "good": {}, "amazing": {}, "awesome": {}, "excellent": {},
	"incredible": {}, "outstanding": {}, "perfect": {}, "best": {},
	"love": {}, "solid": {}, "elite": {}, "clutch": {}, "dominant": {},
	"beast": {}, "unstoppable": {}, "win": {}, "winning": {}, "won": {},
	"victory": {}, "comeback": {}, "touchdown": {}, "scored": {},
}

var negativeWords = map[string]struct{}{
	"terrible": {}, "bad": {}, "awful": {}, "horrible": {}, "worst": {},
	"pathetic": {}, "weak": {}, "trash": {}, "lose": {}, "losing": {},
	"lost": {}, "choke": {}, "choked": {}, "fail": {}, "failed": {},
	"miss": {}, "missed": {}, "fumble": {}, "interception": {},
	"turnover": {}, "penalty": {}, "injury": {}, "injured": {}, "bust": {},
}

// LexiconScorer scores text with a fixed word list. Deterministic and pure:
// the same text always yields the same result, which makes results cacheable.
type LexiconScorer struct{}

// NewLexiconScorer creates a lexicon-based sentiment scorer.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

// Score implements domain.Scorer. It never fails; the error return exists to
// satisfy the contract shared with the remote scorer.
func (s *LexiconScorer) Score(_ context.Context, text string) (domain.SentimentResult, error) {
	tokens := Tokenize(Normalize(text))
	if len(tokens) == 0 {
		metrics.ScorerRequestsTotal.WithLabelValues("lexicon", "ok").Inc()
		return domain.SentimentResult{Label: domain.LabelNeutral}, nil
	}

	rawSum := 0
	matched := 0
	for _, tok := range tokens {
		if _, ok := positiveWords[tok]; ok {
			rawSum++
			matched++
			continue
		}
		if _, ok := negativeWords[tok]; ok {
			rawSum--
			matched++
		}
	}

	score := float64(rawSum) / float64(len(tokens))
	confidence := float64(matched) / float64(len(tokens))

	label := domain.LabelNeutral
	if score > domain.PositiveThreshold {
		label = domain.LabelPositive
	} else if score < domain.NegativeThreshold {
		label = domain.LabelNegative
	}

	metrics.ScorerRequestsTotal.WithLabelValues("lexicon", "ok").Inc()
	return domain.SentimentResult{
		Score:      score,
		Confidence: confidence,
		Label:      label,
	}, nil
}
