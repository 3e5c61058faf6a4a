// Package analysis implements the post-analysis pipeline: per-post sentiment
// and extraction, chunked batch processing, engagement ranking, aggregate
// statistics, and a TTL-cached per-event result facade.
package analysis
