package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 50, cfg.MaxNodes)
	assert.Equal(t, 100, cfg.MaxConnections)
	assert.Equal(t, 300*time.Millisecond, cfg.RecomputeDelay)
	assert.Equal(t, "dark", cfg.DefaultTheme)
	assert.True(t, cfg.EnableCORS)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("MAX_NODES", "25")
	t.Setenv("MAX_CONNECTIONS", "40")
	t.Setenv("RECOMPUTE_DELAY", "1s")
	t.Setenv("DEFAULT_THEME", "light")
	t.Setenv("ENABLE_CORS", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 25, cfg.MaxNodes)
	assert.Equal(t, 40, cfg.MaxConnections)
	assert.Equal(t, time.Second, cfg.RecomputeDelay)
	assert.Equal(t, "light", cfg.DefaultTheme)
	assert.False(t, cfg.EnableCORS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfig_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("MAX_NODES", "lots")
	t.Setenv("RECOMPUTE_DELAY", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.MaxNodes)
	assert.Equal(t, 300*time.Millisecond, cfg.RecomputeDelay)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero node cap",
			mutate:  func(c *Config) { c.MaxNodes = 0 },
			wantErr: "MAX_NODES",
		},
		{
			name:    "negative connection cap",
			mutate:  func(c *Config) { c.MaxConnections = -1 },
			wantErr: "MAX_CONNECTIONS",
		},
		{
			name:    "negative debounce",
			mutate:  func(c *Config) { c.RecomputeDelay = -time.Second },
			wantErr: "RECOMPUTE_DELAY",
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.DefaultTheme = "solarized" },
			wantErr: "DEFAULT_THEME",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig()
			require.NoError(t, err)

			tt.mutate(cfg)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDomainConfig(t *testing.T) {
	t.Setenv("MAX_NODES", "10")
	t.Setenv("MAX_CONNECTIONS", "20")
	t.Setenv("DEFAULT_THEME", "light")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	dc := cfg.DomainConfig()
	assert.Equal(t, 10, dc.MaxNodes)
	assert.Equal(t, 20, dc.MaxConnections)
	assert.Equal(t, "light", dc.DefaultTheme)
}
