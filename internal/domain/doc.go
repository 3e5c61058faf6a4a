// Package domain defines the core data model of the sentiment pipeline:
// posts, analysis results, classification thresholds, and the collaborator
// interfaces the pipeline depends on.
package domain
