// Package quorum implements the fan-out and median aggregation of venue
// quotes into a single manipulation-resistant rate.
package quorum

import "errors"

var (
	// ErrAllVenuesFailed indicates that every venue query failed, including
	// the held-out venue.
	ErrAllVenuesFailed = errors.New("all venue queries failed")
	// ErrNoVenues indicates that the aggregator was constructed without venues.
	ErrNoVenues = errors.New("at least one venue is required")
	// ErrHeldOutNotConfigured indicates that the held-out venue is not part
	// of the configured venue set.
	ErrHeldOutNotConfigured = errors.New("held-out venue not in venue set")
)
