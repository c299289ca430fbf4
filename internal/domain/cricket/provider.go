package cricket

import "context"

// Provider is the upstream statistics API. Implementations issue exactly one
// request per call and never retry or cache.
type Provider interface {
	ListSeries(ctx context.Context, kind Kind, year int) ([]Series, error)
	ListMatches(ctx context.Context, seriesID int64) (RawMatchPayload, error)
}
