package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidPost   = errors.New("invalid post")
	ErrScoringFailed = errors.New("sentiment scoring failed")
	ErrUpstreamFetch = errors.New("upstream fetch failed")
)
