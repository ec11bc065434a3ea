package config

import (
	"testing"
	"time"

	"amphibians/internal/amphibian"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, amphibian.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, amphibian.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.MetricsAddr)
	assert.True(t, cfg.ProbeImages)
	assert.Equal(t, 10*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, "amphibians", cfg.ServiceName)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("AMPHIBIANS_BASE_URL", "http://localhost:8080")
	t.Setenv("AMPHIBIANS_ENDPOINT", "v2/amphibians")
	t.Setenv("AMPHIBIANS_REQUEST_TIMEOUT", "5s")
	t.Setenv("AMPHIBIANS_LOG_LEVEL", "debug")
	t.Setenv("AMPHIBIANS_PROBE_IMAGES", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "v2/amphibians", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.ProbeImages)
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"relative base url", "AMPHIBIANS_BASE_URL", "amphibians.example"},
		{"ftp base url", "AMPHIBIANS_BASE_URL", "ftp://example.test"},
		{"bad timeout", "AMPHIBIANS_REQUEST_TIMEOUT", "soon"},
		{"negative timeout", "AMPHIBIANS_REQUEST_TIMEOUT", "-1s"},
		{"bad log level", "AMPHIBIANS_LOG_LEVEL", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			cfg, err := Load()
			if err == nil {
				err = cfg.Validate()
			}
			assert.Error(t, err)
		})
	}
}

func TestLoad_IgnoresUnprefixedNames(t *testing.T) {
	t.Setenv("BASE_URL", "http://elsewhere.example")
	t.Setenv("ENDPOINT", "somewhere-else")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("LOG_FILE", "/tmp/other.log")
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("PROBE_TIMEOUT", "later")
	t.Setenv("METRICS_ADDR", ":1")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, amphibian.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, amphibian.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.ProbeTimeout)
}

func TestLoad_DefersValidation(t *testing.T) {
	t.Setenv("AMPHIBIANS_LOG_LEVEL", "verbose")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "info"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OTELVariables(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "frogs")
	t.Setenv("AMPHIBIANS_OTLP_ENDPOINT", "localhost:9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "frogs", cfg.ServiceName)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestValidate_FillsEmptyEndpoint(t *testing.T) {
	cfg := &Config{BaseURL: "https://example.test", LogLevel: "info"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, amphibian.DefaultEndpoint, cfg.Endpoint)
}
