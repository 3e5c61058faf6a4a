// Package sentiment implements the two sentiment scorers: a deterministic
// lexicon heuristic and a client for a remote ML scoring service. Both
// satisfy domain.Scorer.
package sentiment
