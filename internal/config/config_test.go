package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 256, cfg.HubQueueSize)
	assert.Equal(t, 8, cfg.MatchParallelism)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HUB_QUEUE_SIZE", "64")
	t.Setenv("MATCH_PARALLELISM", "4")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 64, cfg.HubQueueSize)
	assert.Equal(t, 4, cfg.MatchParallelism)
}

func TestLoad_UnparseableIntFallsBack(t *testing.T) {
	t.Setenv("HUB_QUEUE_SIZE", "lots")

	cfg := Load()
	assert.Equal(t, 256, cfg.HubQueueSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"non-numeric port", func(c *Config) { c.Port = "http" }, "PORT"},
		{"zero queue size", func(c *Config) { c.HubQueueSize = 0 }, "HUB_QUEUE_SIZE"},
		{"negative parallelism", func(c *Config) { c.MatchParallelism = -1 }, "MATCH_PARALLELISM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
