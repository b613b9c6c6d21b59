package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultVenues is the venue set enabled when the config lists none.
var DefaultVenues = []string{"binance", "coinbase", "gateio", "gemini", "kucoin", "mexc"}

// DefaultHeldOut is the venue held out of the eviction pool by default.
const DefaultHeldOut = "gemini"

// Load loads configuration from a YAML file and environment variables.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	data, err := os.ReadFile(absPath) // #nosec G304 -- Path sanitized with filepath.Clean and filepath.Abs
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in YAML
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Default returns a configuration with all defaults applied and no file input.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

// applyDefaults sets default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Quorum.HeldOut == "" {
		cfg.Quorum.HeldOut = DefaultHeldOut
	}

	if len(cfg.Venues) == 0 {
		cfg.Venues = make([]VenueConfig, 0, len(DefaultVenues))
		for _, name := range DefaultVenues {
			cfg.Venues = append(cfg.Venues, VenueConfig{Name: name, Enabled: true})
		}
	}

	// Transport defaults
	if cfg.Transport.Timeout.ToDuration() == 0 {
		cfg.Transport.Timeout = Duration(10 * time.Second)
	}

	// Metrics defaults
	if cfg.Metrics.Enabled && cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9091"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// EnabledVenues returns the names of all enabled venues in config order.
func (c *Config) EnabledVenues() []string {
	names := make([]string, 0, len(c.Venues))
	for _, v := range c.Venues {
		if v.Enabled {
			names = append(names, v.Name)
		}
	}
	return names
}

// VenueByName returns the config entry for a venue, if present.
func (c *Config) VenueByName(name string) (VenueConfig, bool) {
	for _, v := range c.Venues {
		if v.Name == name {
			return v, true
		}
	}
	return VenueConfig{}, false
}
