package analysis

import (
	"sync"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/domain"
)

// Distribution accumulates sentiment label counts across analyses. Counters
// only grow; Reset starts a fresh count. Each pipeline invocation owns its
// own Distribution, so counts never leak across requests.
type Distribution struct {
	mu       sync.Mutex
	positive int
	negative int
	neutral  int
}

// NewDistribution creates an empty distribution aggregator.
func NewDistribution() *Distribution {
	return &Distribution{}
}

// Record classifies score with the shared thresholds and increments the
// matching counter. The increment is a single atomic step with respect to
// concurrent analyses.
func (d *Distribution) Record(score float64) domain.SentimentLabel {
	label := domain.ClassifyScore(score)

	d.mu.Lock()
	defer d.mu.Unlock()
	switch label {
	case domain.LabelPositive:
		d.positive++
	case domain.LabelNegative:
		d.negative++
	default:
		d.neutral++
	}
	return label
}

// Snapshot returns the current counts.
func (d *Distribution) Snapshot() domain.DistributionCounts {
	d.mu.Lock()
	defer d.mu.Unlock()
	return domain.DistributionCounts{
		Positive: d.positive,
		Negative: d.negative,
		Neutral:  d.neutral,
		Total:    d.positive + d.negative + d.neutral,
	}
}

// Reset zeroes all counters.
func (d *Distribution) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.positive, d.negative, d.neutral = 0, 0, 0
}
