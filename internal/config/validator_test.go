package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		MaxSize:    5000,
		Iterations: 10,
		Show:       []string{"iterative", "recursive", "sort"},
		LogFormat:  "text",
		Trace: Trace{
			Speed:    500 * time.Millisecond,
			MinSpeed: 100 * time.Millisecond,
			SpeedUp:  200 * time.Millisecond,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, Validate(&cfg))

	cfg.MetricsAddr = ":2112"
	assert.NoError(t, Validate(&cfg))

	cfg.MetricsAddr = "localhost:9100"
	assert.NoError(t, Validate(&cfg))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"size too small", func(c *Config) { c.MaxSize = 0 }, "MaxSize must be at least 100"},
		{"size too large", func(c *Config) { c.MaxSize = 20100 }, "MaxSize must be at most 20000"},
		{"size off step", func(c *Config) { c.MaxSize = 5050 }, "MaxSize must be a multiple of 100"},
		{"iterations", func(c *Config) { c.Iterations = 0 }, "Iterations must be at least 1"},
		{"unknown algorithm", func(c *Config) { c.Show = []string{"bogo"} }, "Show[0] must be one of"},
		{"no algorithms", func(c *Config) { c.Show = nil }, "Show must be at least 1"},
		{"speed", func(c *Config) { c.Trace.Speed = time.Millisecond }, "Trace.Speed must be at least 100ms"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "LogFormat must be one of [text json]"},
		{"metrics addr", func(c *Config) { c.MetricsAddr = "nope" }, "MetricsAddr must be host:port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(&cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Iterations = 0
	cfg.MaxSize = 50

	err := Validate(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Iterations")
	assert.Contains(t, err.Error(), "MaxSize")
}
