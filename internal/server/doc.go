// Package server exposes the sentiment analysis pipeline over HTTP with
// echo: per-event analysis, weekly summaries, trend reports, cache refresh,
// and the usual health and metrics endpoints.
package server
