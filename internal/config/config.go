// Package config loads runtime settings from AMPHIBIANS_* environment
// variables. Command-line flags may override them after Load.
package config

import (
	"fmt"
	"net/url"
	"time"

	"amphibians/internal/amphibian"
	"amphibians/internal/logger"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "AMPHIBIANS"

// Config holds the settings for the amphibians browser.
// Prefixed fields are read only as AMPHIBIANS_<FIELD_NAME>.
type Config struct {
	BaseURL  string `split_words:"true" default:"https://android-kotlin-fun-mars-server.appspot.com"`
	Endpoint string `default:"amphibians"`

	// Zero means no timeout; a hung request keeps the Loading screen up.
	RequestTimeout time.Duration `split_words:"true" default:"0s"`

	// Empty LogFile discards logs in the TUI.
	LogFile  string `split_words:"true"`
	LogLevel string `split_words:"true" default:"info"`

	// Empty MetricsAddr disables the /metrics endpoint.
	MetricsAddr string `split_words:"true"`

	ProbeImages  bool          `split_words:"true" default:"true"`
	ProbeTimeout time.Duration `split_words:"true" default:"10s"`

	OTLPEndpoint string `ignored:"true"`
	ServiceName  string `ignored:"true"`
}

// otelEnv holds the standard unprefixed OpenTelemetry variables.
type otelEnv struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"amphibians"`
}

// Load parses the environment. It does not validate: callers apply flag
// overrides first and then call Validate.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	var otel otelEnv
	if err := envconfig.Process("", &otel); err != nil {
		return nil, fmt.Errorf("failed to process OTEL environment variables: %w", err)
	}
	cfg.OTLPEndpoint = otel.Endpoint
	cfg.ServiceName = otel.ServiceName
	return &cfg, nil
}

// Validate checks values that envconfig cannot.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base url %q: %w", c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base url %q: must be an absolute http(s) URL", c.BaseURL)
	}
	if c.Endpoint == "" {
		c.Endpoint = amphibian.DefaultEndpoint
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout %s: must not be negative", c.RequestTimeout)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
