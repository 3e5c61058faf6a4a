// Package twitter implements a Twitter API v2 recent-search client with
// local rate limiting and retry classification for transient failures.
package twitter
