// Package retry runs an operation with classified, exponential backoff.
// Callers supply a Classify function that decides per error whether to
// stop, retry, or back off for a rate limit.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Action tells Do how to react to a failed attempt.
type Action int

const (
	// Stop aborts immediately and wraps the error as permanent.
	Stop Action = iota
	// Retry backs off exponentially and tries again.
	Retry
	// After resets the backoff to the rate-limit delay before retrying.
	After
)

// Policy bounds the retry loop.
type Policy struct {
	MaxAttempts      int
	InitialBackoff   time.Duration
	RateLimitBackoff time.Duration

	// OnRetry, when set, is called before each sleep.
	OnRetry func(attempt int, err error, backoff time.Duration)
}

// Classify maps an operation error to the Action to take.
type Classify func(err error) Action

// Operation is the retried unit of work.
type Operation[T any] func() (T, error)

// Do runs op up to p.MaxAttempts times. A Stop classification returns a
// *PermanentError without further attempts. Cancelling ctx interrupts
// the backoff sleep.
func Do[T any](ctx context.Context, p Policy, classify Classify, op Operation[T]) (T, error) {
	var zero T
	backoff := p.InitialBackoff

	for attempt := 1; ; attempt++ {
		val, err := op()
		if err == nil {
			return val, nil
		}

		switch classify(err) {
		case Stop:
			return zero, &PermanentError{Err: err}
		case After:
			backoff = p.RateLimitBackoff
		}

		if attempt >= p.MaxAttempts {
			return zero, fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, err)
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, backoff)
		}

		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			return zero, fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}
}

// PermanentError marks an error the classifier ruled out for retrying.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }
