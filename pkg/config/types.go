package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Transport TransportConfig `yaml:"transport"`
	Quorum    QuorumConfig    `yaml:"quorum"`
	Venues    []VenueConfig   `yaml:"venues"`
}

// QuorumConfig configures the aggregation core.
type QuorumConfig struct {
	// HeldOut names the venue evaluated after all others when deciding
	// whether to evict a random price.
	HeldOut string `yaml:"held_out"`
}

// VenueConfig configures a single venue adapter.
type VenueConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
	// APIURL overrides the venue's default ticker endpoint. Trading-pair
	// symbols are never configurable.
	APIURL string `yaml:"api_url"`
}

// TransportConfig configures the shared HTTP transport.
type TransportConfig struct {
	Timeout   Duration `yaml:"timeout"`
	UserAgent string   `yaml:"user_agent"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Path    string `yaml:"path"`
}

// LoggingConfig configures logging output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Duration wraps time.Duration for YAML parsing of values like "10s".
type Duration time.Duration

// UnmarshalYAML parses a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw interface{}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
	case int:
		*d = Duration(v)
	default:
		return fmt.Errorf("%w: %T", ErrInvalidDuration, raw)
	}
	return nil
}

// ToDuration converts to time.Duration.
func (d Duration) ToDuration() time.Duration {
	return time.Duration(d)
}
