// Package config provides configuration loading and validation for ratequorum.
package config

import "errors"

var (
	// ErrInvalidDuration indicates that a duration value could not be parsed.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrNoVenuesEnabled indicates that no venues are enabled.
	ErrNoVenuesEnabled = errors.New("at least one venue must be enabled")
	// ErrVenueNameRequired indicates that a venue entry is missing its name.
	ErrVenueNameRequired = errors.New("venue name is required")
	// ErrDuplicateVenue indicates that a venue is configured more than once.
	ErrDuplicateVenue = errors.New("venue configured more than once")
	// ErrHeldOutNotEnabled indicates that the held-out venue is not in the enabled set.
	ErrHeldOutNotEnabled = errors.New("held_out venue is not enabled")
	// ErrInvalidLogLevel indicates that the log level is invalid.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat indicates that the log format is invalid.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrMetricsAddrRequired indicates that a metrics address is required when enabled.
	ErrMetricsAddrRequired = errors.New("metrics addr must be specified when metrics are enabled")
	// ErrNegativeTimeout indicates a negative transport timeout.
	ErrNegativeTimeout = errors.New("transport timeout must not be negative")
)
