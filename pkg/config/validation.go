package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration for errors.
func Validate(cfg *Config) error {
	if err := validateVenues(cfg); err != nil {
		return err
	}

	if cfg.Transport.Timeout.ToDuration() < 0 {
		return fmt.Errorf("transport config: %w", ErrNegativeTimeout)
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		return fmt.Errorf("metrics config: %w", ErrMetricsAddrRequired)
	}

	if err := validateLoggingConfig(&cfg.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

func validateVenues(cfg *Config) error {
	seen := make(map[string]bool, len(cfg.Venues))
	enabled := make(map[string]bool, len(cfg.Venues))
	for i, v := range cfg.Venues {
		if v.Name == "" {
			return fmt.Errorf("venue %d: %w", i, ErrVenueNameRequired)
		}
		if seen[v.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateVenue, v.Name)
		}
		seen[v.Name] = true
		if v.Enabled {
			enabled[v.Name] = true
		}
	}

	if len(enabled) == 0 {
		return fmt.Errorf("%w", ErrNoVenuesEnabled)
	}

	// The held-out venue is allowed to fail at runtime, but holding out a
	// venue that is never queried is a configuration mistake.
	if !enabled[cfg.Quorum.HeldOut] {
		return fmt.Errorf("%w: %s", ErrHeldOutNotEnabled, cfg.Quorum.HeldOut)
	}

	return nil
}

func validateLoggingConfig(cfg *LoggingConfig) error {
	switch strings.ToLower(cfg.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLogLevel, cfg.Level)
	}

	switch strings.ToLower(cfg.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLogFormat, cfg.Format)
	}

	return nil
}
