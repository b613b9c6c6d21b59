// Package sources provides the quote model, currency routing and venue
// adapter interfaces.
package sources

import "errors"

var (
	// ErrAPIError indicates that a venue returned an application-level error code.
	ErrAPIError = errors.New("API error")
	// ErrNoTickersInResponse indicates an empty result where one ticker was expected.
	ErrNoTickersInResponse = errors.New("no tickers in response")
	// ErrPairNotRouted indicates that a venue has no symbol for the requested pair.
	ErrPairNotRouted = errors.New("pair not routed for venue")
	// ErrUnknownVenue indicates that a venue name is not registered.
	ErrUnknownVenue = errors.New("unknown venue")
)
